package search

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/agency-dashboard/internal/http/response"
	"github.com/magabrotheeeer/agency-dashboard/internal/lib/sl"
	"github.com/magabrotheeeer/agency-dashboard/internal/models"
)

// Request — параметры поиска заявок из query string.
// Длинный запрос просто ничего не находит; ограничение отсекает только
// заведомо мусорные строки, которые иначе стали бы ключами кеша.
type Request struct {
	Query string `validate:"max=2048"`
}

type Service interface {
	SearchLeads(ctx context.Context, query string) ([]models.Lead, error)
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
// @Summary      Search leads
// @Description  Case-insensitive substring search over lead name, email and profession
// @Tags         leads
// @Produce      json
// @Param        q   query     string  false  "search text"
// @Success      200 {object}  response.Response
// @Failure      400 {object}  response.Response
// @Router       /leads [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.leads.search"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	// пробелы не обрезаются: строка из пробелов ищется как есть
	req := Request{Query: r.URL.Query().Get("q")}
	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	leads, err := h.service.SearchLeads(r.Context(), req.Query)
	if err != nil {
		log.Error("failed to search leads", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to search leads"))
		return
	}

	log.Debug("leads found", slog.String("query", req.Query), slog.Int("count", len(leads)))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"count": len(leads),
		"leads": leads,
	}))
}
