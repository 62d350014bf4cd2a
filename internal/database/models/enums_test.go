package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFrequencyNext(t *testing.T) {
	from := time.Date(2026, time.January, 31, 8, 0, 0, 0, time.UTC)

	cases := map[Frequency]time.Time{
		FrequencyDaily:      time.Date(2026, time.February, 1, 8, 0, 0, 0, time.UTC),
		FrequencyWeekly:     time.Date(2026, time.February, 7, 8, 0, 0, 0, time.UTC),
		FrequencyMonthly:    time.Date(2026, time.February, 28, 8, 0, 0, 0, time.UTC),
		FrequencyQuarterly:  time.Date(2026, time.April, 30, 8, 0, 0, 0, time.UTC),
		FrequencySemiannual: time.Date(2026, time.July, 31, 8, 0, 0, 0, time.UTC),
		FrequencyAnnual:     time.Date(2027, time.January, 31, 8, 0, 0, 0, time.UTC),
	}

	for freq, want := range cases {
		assert.Equal(t, want, freq.Next(from), string(freq))
	}

	assert.Equal(t, from, Frequency("fortnightly").Next(from))
}

func TestFrequencyNextClampsToMonthEnd(t *testing.T) {
	tests := []struct {
		name string
		freq Frequency
		from time.Time
		want time.Time
	}{
		{"monthly from Jan 30", FrequencyMonthly, time.Date(2025, time.January, 30, 8, 0, 0, 0, time.UTC), time.Date(2025, time.February, 28, 8, 0, 0, 0, time.UTC)},
		{"monthly into leap February", FrequencyMonthly, time.Date(2028, time.January, 31, 8, 0, 0, 0, time.UTC), time.Date(2028, time.February, 29, 8, 0, 0, 0, time.UTC)},
		{"monthly keeps mid-month day", FrequencyMonthly, time.Date(2026, time.March, 15, 8, 0, 0, 0, time.UTC), time.Date(2026, time.April, 15, 8, 0, 0, 0, time.UTC)},
		{"monthly across year end", FrequencyMonthly, time.Date(2026, time.December, 31, 8, 0, 0, 0, time.UTC), time.Date(2027, time.January, 31, 8, 0, 0, 0, time.UTC)},
		{"quarterly from Nov 30", FrequencyQuarterly, time.Date(2026, time.November, 30, 8, 0, 0, 0, time.UTC), time.Date(2027, time.February, 28, 8, 0, 0, 0, time.UTC)},
		{"semiannual from Aug 31", FrequencySemiannual, time.Date(2026, time.August, 31, 8, 0, 0, 0, time.UTC), time.Date(2027, time.February, 28, 8, 0, 0, 0, time.UTC)},
		{"annual from leap day", FrequencyAnnual, time.Date(2028, time.February, 29, 8, 0, 0, 0, time.UTC), time.Date(2029, time.February, 28, 8, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.freq.Next(tt.from))
		})
	}
}

func TestEnumValidation(t *testing.T) {
	assert.True(t, RoleSuperAdmin.IsValid())
	assert.False(t, Role("owner").IsValid())

	assert.True(t, TaskStatusReview.IsValid())
	assert.False(t, TaskStatus("blocked").IsValid())

	assert.True(t, ServiceOrderStatusPending.IsOpen())
	assert.True(t, ServiceOrderStatusInProgress.IsOpen())
	assert.False(t, ServiceOrderStatusCompleted.IsOpen())

	assert.True(t, MaintenanceTypeInspection.IsValid())
	assert.False(t, Priority("urgent").IsValid())
	assert.True(t, EventTypeMeeting.IsValid())
	assert.False(t, BugStatus("wontfix").IsValid())
	assert.Len(t, TaskStatuses, 4)
}
