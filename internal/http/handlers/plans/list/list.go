package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/agency-dashboard/internal/http/response"
	"github.com/magabrotheeeer/agency-dashboard/internal/lib/sl"
	"github.com/magabrotheeeer/agency-dashboard/internal/models"
)

type Service interface {
	Plans(ctx context.Context) ([]models.Plan, error)
}

type Handler struct {
	log     *slog.Logger
	service Service
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary      List client plans
// @Tags         plans
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /plans [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.plans.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	plans, err := h.service.Plans(r.Context())
	if err != nil {
		log.Error("failed to list plans", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list plans"))
		return
	}

	log.Info("list plans", "count", len(plans))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"list_count": len(plans),
		"plans":      plans,
	}))
}
