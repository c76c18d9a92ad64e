package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/child-therapy-api/internal/models"
)

func sessionOn(ts time.Time) models.TherapySession {
	return models.TherapySession{SessionDate: ts}
}

func TestMonthBounds(t *testing.T) {
	start, end := MonthBounds(2026, time.March)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), end)

	// December rolls into the next year.
	start, end = MonthBounds(2025, time.December)
	assert.Equal(t, time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestPartitionMonthCoversWholeMonth(t *testing.T) {
	start, end := MonthBounds(2026, time.January)

	// One session per day so every window is kept.
	var sessions []models.TherapySession
	for day := 0; day < 31; day++ {
		sessions = append(sessions, sessionOn(start.AddDate(0, 0, day).Add(10*time.Hour)))
	}

	windows := PartitionMonth(start, end, sessions)
	require.Len(t, windows, 5)

	assert.Equal(t, start, windows[0].Start)
	for i := 1; i < len(windows); i++ {
		assert.Equal(t, windows[i-1].End, windows[i].Start)
	}
	// Final window clips at the month boundary: Jan 29-31 is 3 days.
	assert.Equal(t, end, windows[4].End)
	assert.Len(t, windows[4].Sessions, 3)
	assert.Len(t, windows[0].Sessions, 7)
}

func TestPartitionMonthDropsEmptyWindows(t *testing.T) {
	start, end := MonthBounds(2026, time.January)

	sessions := []models.TherapySession{
		sessionOn(time.Date(2026, 1, 2, 9, 0, 0, 0, time.UTC)),
		sessionOn(time.Date(2026, 1, 20, 9, 0, 0, 0, time.UTC)),
	}

	windows := PartitionMonth(start, end, sessions)
	require.Len(t, windows, 2)
	assert.Equal(t, start, windows[0].Start)
	assert.Equal(t, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), windows[1].Start)
	// Kept windows are still non-overlapping and ordered.
	assert.True(t, !windows[1].Start.Before(windows[0].End))
}

func TestWindowBoundariesAreHalfOpen(t *testing.T) {
	start, end := MonthBounds(2026, time.January)
	boundary := start.AddDate(0, 0, 7)

	sessions := []models.TherapySession{sessionOn(boundary)}
	windows := PartitionMonth(start, end, sessions)

	require.Len(t, windows, 1)
	// A session exactly at a window boundary belongs to the later window.
	assert.Equal(t, boundary, windows[0].Start)
}

func TestPartitionMonthEmpty(t *testing.T) {
	start, end := MonthBounds(2026, time.February)
	assert.Empty(t, PartitionMonth(start, end, nil))
}

func TestTrailingWeek(t *testing.T) {
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	from, to := TrailingWeek(now)
	assert.Equal(t, now, to)
	assert.Equal(t, now.AddDate(0, 0, -7), from)
}
