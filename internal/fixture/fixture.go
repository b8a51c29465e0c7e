// Package fixture предоставляет исходный набор данных дашборда:
// встроенный набор по умолчанию и загрузку из YAML-файла.
package fixture

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/magabrotheeeer/agency-dashboard/internal/lib/day"
	"github.com/magabrotheeeer/agency-dashboard/internal/models"
)

// Dataset — три коллекции, с которыми работает ядро.
type Dataset struct {
	Leads        []models.Lead        `yaml:"leads"`
	Plans        []models.Plan        `yaml:"plans"`
	Appointments []models.Appointment `yaml:"appointments"`
}

// Load читает набор данных из YAML-файла и проверяет его инварианты.
func Load(path string) (*Dataset, error) {
	const op = "fixture.Load"

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var ds Dataset
	if err := yaml.Unmarshal(raw, &ds); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, models.ErrInvalidInput, err)
	}
	if err := ds.Normalize(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &ds, nil
}

// Normalize выдаёт идентификаторы записям без них и проверяет,
// что идентификаторы уникальны, перечисления корректны, а даты заданы.
func (ds *Dataset) Normalize() error {
	seen := make(map[string]struct{}, len(ds.Leads))
	for i := range ds.Leads {
		lead := &ds.Leads[i]
		if lead.ID == "" {
			lead.ID = uuid.NewString()
		}
		if _, ok := seen[lead.ID]; ok {
			return fmt.Errorf("duplicate lead id %q: %w", lead.ID, models.ErrInvalidInput)
		}
		seen[lead.ID] = struct{}{}
		if lead.Date.IsZero() {
			return fmt.Errorf("lead %s: missing date: %w", lead.ID, models.ErrInvalidInput)
		}
	}

	seen = make(map[string]struct{}, len(ds.Plans))
	for i := range ds.Plans {
		plan := &ds.Plans[i]
		if plan.ID == "" {
			plan.ID = uuid.NewString()
		}
		if _, ok := seen[plan.ID]; ok {
			return fmt.Errorf("duplicate plan id %q: %w", plan.ID, models.ErrInvalidInput)
		}
		seen[plan.ID] = struct{}{}
		if err := plan.Validate(); err != nil {
			return err
		}
	}

	for i, a := range ds.Appointments {
		if a.At.IsZero() {
			return fmt.Errorf("appointment #%d (%s): missing date: %w", i, a.Client, models.ErrInvalidInput)
		}
	}
	return nil
}

// Default возвращает встроенный набор данных. Встречи назначаются
// относительно now: через 2, 4, 7 и 9 дней.
func Default(now time.Time) *Dataset {
	today := day.Of(now)
	slot := func(days, hour, minute int) time.Time {
		d := today.AddDays(days)
		return time.Date(d.Year, d.Month, d.Day, hour, minute, 0, 0, now.Location())
	}

	return &Dataset{
		Leads: []models.Lead{
			{
				ID:         "L001",
				Name:       "Dr. Sarah Johnson",
				Email:      "sarah.johnson@example.com",
				Profession: "Doctor",
				Message:    "Looking for a new website for my private practice",
				Date:       day.New(2023, time.April, 12),
			},
			{
				ID:         "L002",
				Name:       "Atty. Michael Chen",
				Email:      "michael.chen@example.com",
				Profession: "Lawyer",
				Message:    "Need a complete rebrand and website overhaul",
				Date:       day.New(2023, time.April, 14),
			},
			{
				ID:         "L003",
				Name:       "Jessica Williams",
				Email:      "jessica@coffeeshop.com",
				Profession: "Small Business Owner",
				Message:    "Interested in e-commerce integration for my coffee shop",
				Date:       day.New(2023, time.April, 15),
			},
			{
				ID:         "L004",
				Name:       "Robert Davis",
				Email:      "robert.davis@example.com",
				Profession: "Developer",
				Message:    "Looking for help with a SaaS product design",
				Date:       day.New(2023, time.April, 16),
			},
			{
				ID:         "L005",
				Name:       "Dr. Emily Rodriguez",
				Email:      "emily.rodriguez@example.com",
				Profession: "Doctor",
				Message:    "Need a website with appointment scheduling",
				Date:       day.New(2023, time.April, 18),
			},
		},
		Plans: []models.Plan{
			{ID: "P001", Name: "Dr. Sarah Johnson", Email: "sarah.johnson@example.com", Tier: models.TierPremium, Status: models.StatusConfirmed},
			{ID: "P002", Name: "Atty. Michael Chen", Email: "michael.chen@example.com", Tier: models.TierPro, Status: models.StatusPending},
			{ID: "P003", Name: "Jessica Williams", Email: "jessica@coffeeshop.com", Tier: models.TierBasic, Status: models.StatusConfirmed},
			{ID: "P004", Name: "Robert Davis", Email: "robert.davis@example.com", Tier: models.TierPremium, Status: models.StatusPending},
			{ID: "P005", Name: "Dr. Emily Rodriguez", Email: "emily.rodriguez@example.com", Tier: models.TierPro, Status: models.StatusConfirmed},
		},
		Appointments: []models.Appointment{
			{At: slot(2, 10, 0), Client: "Dr. Sarah Johnson"},
			{At: slot(4, 14, 0), Client: "Atty. Michael Chen"},
			{At: slot(7, 11, 30), Client: "Jessica Williams"},
			{At: slot(9, 15, 0), Client: "Robert Davis"},
		},
	}
}
