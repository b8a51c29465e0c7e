// Package memory хранит коллекции дашборда в памяти процесса.
// Чтение отдаёт копии срезов, единственная мутация — переключение статуса тарифа —
// выполняется под эксклюзивной блокировкой, поэтому одновременные переключения
// одного тарифа не теряются.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/magabrotheeeer/agency-dashboard/internal/fixture"
	"github.com/magabrotheeeer/agency-dashboard/internal/models"
	"github.com/magabrotheeeer/agency-dashboard/internal/status"
)

type Storage struct {
	mu           sync.RWMutex
	leads        []models.Lead
	plans        []models.Plan
	appointments []models.Appointment
}

// New создаёт хранилище из набора данных. Набор копируется.
func New(ds *fixture.Dataset) *Storage {
	return &Storage{
		leads:        slices.Clone(ds.Leads),
		plans:        slices.Clone(ds.Plans),
		appointments: slices.Clone(ds.Appointments),
	}
}

func (s *Storage) Leads(ctx context.Context) ([]models.Lead, error) {
	const op = "storage.memory.Leads"
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.leads), nil
}

func (s *Storage) Appointments(ctx context.Context) ([]models.Appointment, error) {
	const op = "storage.memory.Appointments"
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.appointments), nil
}

func (s *Storage) Plans(ctx context.Context) ([]models.Plan, error) {
	const op = "storage.memory.Plans"
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.plans), nil
}

// TogglePlanStatus переключает статус тарифа id и возвращает обновлённый тариф.
func (s *Storage) TogglePlanStatus(ctx context.Context, id string) (models.Plan, error) {
	const op = "storage.memory.TogglePlanStatus"
	if err := ctx.Err(); err != nil {
		return models.Plan{}, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	plan, err := status.Toggle(s.plans, id)
	if err != nil {
		return models.Plan{}, fmt.Errorf("%s: %w", op, err)
	}
	return plan, nil
}
