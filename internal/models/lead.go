// Package models содержит доменные структуры дашборда агентства:
// заявки клиентов (Lead), выбранные тарифы (Plan) и встречи в календаре (Appointment).
package models

import "github.com/magabrotheeeer/agency-dashboard/internal/lib/day"

// Lead — входящая заявка клиента. После создания не изменяется.
type Lead struct {
	ID         string   `json:"id" yaml:"id"`
	Name       string   `json:"name" yaml:"name"`
	Email      string   `json:"email" yaml:"email"`
	Profession string   `json:"profession" yaml:"profession"`
	Message    string   `json:"message" yaml:"message"`
	Date       day.Date `json:"date" yaml:"date"` // Дата подачи заявки, без времени
}
