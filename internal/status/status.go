// Package status переключает статус подтверждения тарифа клиента.
package status

import (
	"fmt"

	"github.com/magabrotheeeer/agency-dashboard/internal/models"
)

// Toggle находит тариф по id и переводит его статус в противоположный
// (Pending ↔ Confirmed) прямо в срезе plans. Возвращает копию обновлённого тарифа.
// Если тарифа нет, возвращает models.ErrNotFound и ничего не меняет.
//
// Toggle не синхронизирован: при конкурентном доступе вызывающий держит блокировку
// на коллекции.
func Toggle(plans []models.Plan, id string) (models.Plan, error) {
	const op = "status.Toggle"

	i := Index(plans, id)
	if i < 0 {
		return models.Plan{}, fmt.Errorf("%s: plan %q: %w", op, id, models.ErrNotFound)
	}
	plans[i].Status = plans[i].Status.Toggled()
	return plans[i], nil
}

// Index возвращает позицию тарифа с данным id или -1.
func Index(plans []models.Plan, id string) int {
	for i := range plans {
		if plans[i].ID == id {
			return i
		}
	}
	return -1
}
