// Package dashboard связывает хранилище, кеш и чистые функции ядра
// (search, calendar, status) для слоя представления.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/agency-dashboard/internal/calendar"
	"github.com/magabrotheeeer/agency-dashboard/internal/lib/day"
	"github.com/magabrotheeeer/agency-dashboard/internal/lib/sl"
	"github.com/magabrotheeeer/agency-dashboard/internal/metrics"
	"github.com/magabrotheeeer/agency-dashboard/internal/models"
	"github.com/magabrotheeeer/agency-dashboard/internal/search"
)

const (
	leadsKeyPrefix    = "leads:search:"
	calendarKeyPrefix = "calendar:day:"
	bookedKey         = "calendar:booked"
)

// Repository определяет доступ к коллекциям дашборда.
type Repository interface {
	// Leads возвращает все заявки в порядке добавления.
	Leads(ctx context.Context) ([]models.Lead, error)
	// Appointments возвращает все встречи в порядке добавления.
	Appointments(ctx context.Context) ([]models.Appointment, error)
	// Plans возвращает все тарифы в порядке добавления.
	Plans(ctx context.Context) ([]models.Plan, error)
	// TogglePlanStatus переключает статус тарифа и возвращает его новое состояние.
	TogglePlanStatus(ctx context.Context, id string) (models.Plan, error)
}

// Cache описывает кеш результатов запросов.
// Кешируются только выборки по неизменяемым коллекциям (заявки, встречи).
type Cache interface {
	Get(ctx context.Context, key string, result any) (bool, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
}

type Service struct {
	repo    Repository
	cache   Cache
	metrics *metrics.Metrics
	log     *slog.Logger
	ttl     time.Duration
}

func NewService(repo Repository, cache Cache, m *metrics.Metrics, log *slog.Logger, ttl time.Duration) *Service {
	return &Service{
		repo:    repo,
		cache:   cache,
		metrics: m,
		log:     log,
		ttl:     ttl,
	}
}

// ParseDate разбирает выбранный день из параметра запроса.
// Пустая строка означает, что день не выбран, и даёт nil.
func ParseDate(raw string) (*day.Date, error) {
	const op = "dashboard.ParseDate"
	if raw == "" {
		return nil, nil
	}
	d, err := day.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, models.ErrInvalidInput, err)
	}
	return &d, nil
}

// SearchLeads возвращает заявки, подходящие под query.
func (s *Service) SearchLeads(ctx context.Context, query string) ([]models.Lead, error) {
	const op = "dashboard.SearchLeads"

	var res []models.Lead
	key := leadsKeyPrefix + query
	if s.lookup(ctx, key, &res) {
		s.metrics.ObserveQuery("leads", len(res))
		return res, nil
	}

	leads, err := s.repo.Leads(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	res = search.Leads(leads, query)

	s.store(ctx, key, res)
	s.metrics.ObserveQuery("leads", len(res))
	return res, nil
}

// AppointmentsOnDate возвращает встречи выбранного дня. nil — день не выбран.
func (s *Service) AppointmentsOnDate(ctx context.Context, date *day.Date) ([]models.Appointment, error) {
	const op = "dashboard.AppointmentsOnDate"

	if date == nil {
		s.metrics.ObserveQuery("calendar", 0)
		return calendar.OnDate(nil, nil), nil
	}

	var res []models.Appointment
	key := calendarKeyPrefix + date.String()
	if s.lookup(ctx, key, &res) {
		s.metrics.ObserveQuery("calendar", len(res))
		return res, nil
	}

	appts, err := s.repo.Appointments(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	res = calendar.OnDate(appts, date)

	s.store(ctx, key, res)
	s.metrics.ObserveQuery("calendar", len(res))
	return res, nil
}

// BookedDays возвращает дни, на которые назначены встречи.
func (s *Service) BookedDays(ctx context.Context) ([]day.Date, error) {
	const op = "dashboard.BookedDays"

	var res []day.Date
	if s.lookup(ctx, bookedKey, &res) {
		return res, nil
	}

	appts, err := s.repo.Appointments(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	res = calendar.BookedDays(appts)

	s.store(ctx, bookedKey, res)
	return res, nil
}

// Plans возвращает все тарифы клиентов.
// Список читается из хранилища напрямую: статусы меняются через TogglePlanStatus,
// и следующее чтение должно видеть изменение сразу.
func (s *Service) Plans(ctx context.Context) ([]models.Plan, error) {
	const op = "dashboard.Plans"

	res, err := s.repo.Plans(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.metrics.ObserveQuery("plans", len(res))
	return res, nil
}

// TogglePlanStatus переключает статус тарифа id.
func (s *Service) TogglePlanStatus(ctx context.Context, id string) (models.Plan, error) {
	const op = "dashboard.TogglePlanStatus"

	plan, err := s.repo.TogglePlanStatus(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			s.log.Warn("plan not found", slog.String("id", id))
		}
		return models.Plan{}, fmt.Errorf("%s: %w", op, err)
	}

	s.metrics.StatusToggles.WithLabelValues(string(plan.Status)).Inc()
	s.log.Info("plan status toggled", slog.String("id", plan.ID), slog.String("status", string(plan.Status)))
	return plan, nil
}

// lookup читает значение из кеша. Ошибки кеша не прерывают запрос.
func (s *Service) lookup(ctx context.Context, key string, result any) bool {
	found, err := s.cache.Get(ctx, key, result)
	if err != nil {
		s.log.Warn("failed to read from cache", slog.String("key", key), sl.Err(err))
		s.metrics.CacheLookups.WithLabelValues("error").Inc()
		return false
	}
	if !found {
		s.metrics.CacheLookups.WithLabelValues("miss").Inc()
		return false
	}
	s.metrics.CacheLookups.WithLabelValues("hit").Inc()
	return true
}

func (s *Service) store(ctx context.Context, key string, value any) {
	if err := s.cache.Set(ctx, key, value, s.ttl); err != nil {
		s.log.Warn("failed to cache result", slog.String("key", key), sl.Err(err))
	}
}
