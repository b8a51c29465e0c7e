package status

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/agency-dashboard/internal/models"
)

func testPlans() []models.Plan {
	return []models.Plan{
		{ID: "P001", Name: "Dr. Sarah Johnson", Email: "sarah.johnson@example.com", Tier: models.TierPremium, Status: models.StatusConfirmed},
		{ID: "P002", Name: "Atty. Michael Chen", Email: "michael.chen@example.com", Tier: models.TierPro, Status: models.StatusPending},
		{ID: "P003", Name: "Jessica Williams", Email: "jessica@coffeeshop.com", Tier: models.TierBasic, Status: models.StatusConfirmed},
	}
}

func TestToggle_PendingConfirmedRoundTrip(t *testing.T) {
	plans := testPlans()

	got, err := Toggle(plans, "P002")
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, got.Status)
	assert.Equal(t, models.StatusConfirmed, plans[1].Status, "mutation must be visible in the collection")

	got, err = Toggle(plans, "P002")
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, got.Status)
	assert.Equal(t, testPlans(), plans)
}

func TestToggle_OnlyTargetChanges(t *testing.T) {
	plans := testPlans()

	_, err := Toggle(plans, "P001")
	require.NoError(t, err)

	want := testPlans()
	want[0].Status = models.StatusPending
	assert.Equal(t, want, plans)
}

func TestToggle_NotFound(t *testing.T) {
	tests := []struct {
		name  string
		plans []models.Plan
		id    string
	}{
		{name: "unknown id", plans: testPlans(), id: "P999"},
		{name: "case sensitive id", plans: testPlans(), id: "p001"},
		{name: "empty id", plans: testPlans(), id: ""},
		{name: "empty collection", plans: nil, id: "P001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := append([]models.Plan(nil), tt.plans...)

			_, err := Toggle(tt.plans, tt.id)

			require.Error(t, err)
			assert.True(t, errors.Is(err, models.ErrNotFound))
			assert.Equal(t, before, tt.plans)
		})
	}
}

func TestIndex(t *testing.T) {
	plans := testPlans()
	assert.Equal(t, 0, Index(plans, "P001"))
	assert.Equal(t, 2, Index(plans, "P003"))
	assert.Equal(t, -1, Index(plans, "P004"))
}
