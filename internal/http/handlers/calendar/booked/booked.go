package booked

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/agency-dashboard/internal/http/response"
	"github.com/magabrotheeeer/agency-dashboard/internal/lib/day"
	"github.com/magabrotheeeer/agency-dashboard/internal/lib/sl"
)

type Service interface {
	BookedDays(ctx context.Context) ([]day.Date, error)
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
// @Summary      Booked days
// @Description  Days that carry at least one appointment, for highlighting in the calendar
// @Tags         calendar
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /calendar/booked [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.calendar.booked"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	days, err := h.service.BookedDays(r.Context())
	if err != nil {
		log.Error("failed to list booked days", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list booked days"))
		return
	}

	render.JSON(w, r, response.OKWithData(map[string]any{
		"days": days,
	}))
}
