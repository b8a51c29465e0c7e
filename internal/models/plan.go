package models

import "fmt"

// PlanTier — уровень тарифа клиента.
type PlanTier string

const (
	TierBasic   PlanTier = "Basic"
	TierPro     PlanTier = "Pro"
	TierPremium PlanTier = "Premium"
)

// Valid сообщает, входит ли тариф в перечисление.
func (t PlanTier) Valid() bool {
	switch t {
	case TierBasic, TierPro, TierPremium:
		return true
	}
	return false
}

// PlanStatus — статус подтверждения тарифа. Других состояний, кроме Pending и Confirmed, нет.
type PlanStatus string

const (
	StatusPending   PlanStatus = "Pending"
	StatusConfirmed PlanStatus = "Confirmed"
)

// Valid сообщает, входит ли статус в перечисление.
func (s PlanStatus) Valid() bool {
	return s == StatusPending || s == StatusConfirmed
}

// Toggled возвращает второй член перечисления.
func (s PlanStatus) Toggled() PlanStatus {
	if s == StatusConfirmed {
		return StatusPending
	}
	return StatusConfirmed
}

// Plan — тариф, выбранный клиентом, и статус его подтверждения.
// Изменяется только поле Status.
type Plan struct {
	ID     string     `json:"id" yaml:"id"`
	Name   string     `json:"name" yaml:"name"`
	Email  string     `json:"email" yaml:"email"`
	Tier   PlanTier   `json:"plan" yaml:"plan"`
	Status PlanStatus `json:"status" yaml:"status"`
}

// Validate проверяет инварианты перечислений.
func (p Plan) Validate() error {
	if !p.Tier.Valid() {
		return fmt.Errorf("plan %s: unknown tier %q: %w", p.ID, p.Tier, ErrInvalidInput)
	}
	if !p.Status.Valid() {
		return fmt.Errorf("plan %s: unknown status %q: %w", p.ID, p.Status, ErrInvalidInput)
	}
	return nil
}
