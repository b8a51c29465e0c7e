package day

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/agency-dashboard/internal/http/response"
	libday "github.com/magabrotheeeer/agency-dashboard/internal/lib/day"
	"github.com/magabrotheeeer/agency-dashboard/internal/lib/sl"
	"github.com/magabrotheeeer/agency-dashboard/internal/models"
	"github.com/magabrotheeeer/agency-dashboard/internal/services/dashboard"
)

type Service interface {
	AppointmentsOnDate(ctx context.Context, date *libday.Date) ([]models.Appointment, error)
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
// @Summary      Appointments on a day
// @Description  Lists appointments scheduled on the selected day; without a date the list is empty
// @Tags         calendar
// @Produce      json
// @Param        date query     string  false  "selected day, YYYY-MM-DD"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /calendar [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.calendar.day"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	date, err := dashboard.ParseDate(r.URL.Query().Get("date"))
	if err != nil {
		log.Error("invalid date", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("date must be in format YYYY-MM-DD"))
		return
	}

	appts, err := h.service.AppointmentsOnDate(r.Context(), date)
	if err != nil {
		log.Error("failed to match appointments", sl.Err(err))
		status := http.StatusInternalServerError
		if errors.Is(err, models.ErrInvalidInput) {
			status = http.StatusBadRequest
		}
		render.Status(r, status)
		render.JSON(w, r, response.Error("failed to load appointments"))
		return
	}

	log.Debug("appointments matched", slog.Any("date", date), slog.Int("count", len(appts)))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"date":         date,
		"count":        len(appts),
		"appointments": appts,
	}))
}
