package toggle

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/agency-dashboard/internal/http/response"
	"github.com/magabrotheeeer/agency-dashboard/internal/lib/sl"
	"github.com/magabrotheeeer/agency-dashboard/internal/models"
)

// Request — идентификатор тарифа из URL.
type Request struct {
	ID string `validate:"required,max=64"`
}

type Service interface {
	TogglePlanStatus(ctx context.Context, id string) (models.Plan, error)
}

type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary      Toggle plan status
// @Description  Switches the plan between Pending and Confirmed
// @Tags         plans
// @Produce      json
// @Param        id   path      string  true  "plan id"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /plans/{id}/toggle [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.plans.toggle"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	req := Request{ID: chi.URLParam(r, "id")}
	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	plan, err := h.service.TogglePlanStatus(r.Context(), req.ID)
	if errors.Is(err, models.ErrNotFound) {
		log.Info("plan not found", slog.String("id", req.ID))
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Error("plan not found"))
		return
	}
	if err != nil {
		log.Error("failed to toggle plan status", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not toggle plan status"))
		return
	}

	log.Info("plan status toggled", slog.String("id", plan.ID), slog.String("status", string(plan.Status)))
	render.JSON(w, r, response.OKWithData(plan))
}
