package day

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{name: "valid date", input: "2023-04-12", want: Date{Year: 2023, Month: time.April, Day: 12}},
		{name: "leap day", input: "2024-02-29", want: Date{Year: 2024, Month: time.February, Day: 29}},
		{name: "not a leap year", input: "2023-02-29", wantErr: true},
		{name: "wrong layout", input: "12-04-2023", wantErr: true},
		{name: "with time", input: "2023-04-12T10:00", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrMalformed))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEqualIgnoresTimeOfDay(t *testing.T) {
	morning := time.Date(2023, 4, 12, 10, 0, 0, 0, time.UTC)
	evening := time.Date(2023, 4, 12, 23, 59, 0, 0, time.UTC)
	next := time.Date(2023, 4, 13, 0, 0, 0, 0, time.UTC)

	assert.True(t, Of(morning).Equal(Of(evening)))
	assert.False(t, Of(evening).Equal(Of(next)))
	assert.True(t, New(2023, time.April, 12).Contains(evening))
}

func TestOfUsesOwnLocation(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)
	// 2023-04-13 02:00 UTC это ещё 12 апреля в UTC-5
	ts := time.Date(2023, 4, 13, 2, 0, 0, 0, time.UTC).In(loc)

	assert.Equal(t, New(2023, time.April, 12), Of(ts))
}

func TestAddDays(t *testing.T) {
	assert.Equal(t, New(2023, time.May, 1), New(2023, time.April, 29).AddDays(2))
	assert.Equal(t, New(2022, time.December, 31), New(2023, time.January, 1).AddDays(-1))
}

func TestTextMarshalling(t *testing.T) {
	type wrapper struct {
		Date Date `json:"date"`
	}

	raw, err := json.Marshal(wrapper{Date: New(2023, time.April, 2)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2023-04-02"}`, string(raw))

	var out wrapper
	require.NoError(t, json.Unmarshal([]byte(`{"date":"2023-04-18"}`), &out))
	assert.Equal(t, New(2023, time.April, 18), out.Date)

	assert.Error(t, json.Unmarshal([]byte(`{"date":"18.04.2023"}`), &out))
}

func TestIsZero(t *testing.T) {
	assert.True(t, Date{}.IsZero())
	assert.False(t, New(2023, time.April, 12).IsZero())
}
