package service

import (
	"time"

	"github.com/noah-isme/child-therapy-api/internal/models"
)

// Window is a half-open time span [Start, End) with the sessions that fall
// inside it.
type Window struct {
	Start    time.Time
	End      time.Time
	Sessions []models.TherapySession
}

// Contains reports whether ts falls inside the window.
func (w Window) Contains(ts time.Time) bool {
	return !ts.Before(w.Start) && ts.Before(w.End)
}

// MonthBounds returns the first instants of the given month and of the
// following month.
func MonthBounds(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

// TrailingWeek returns the rolling [now-7d, now] window used by weekly
// reports. Unlike monthly sub-windows it is not calendar-aligned.
func TrailingWeek(now time.Time) (time.Time, time.Time) {
	return now.AddDate(0, 0, -7), now
}

// PartitionMonth splits [monthStart, monthEnd) into consecutive 7-day
// windows starting at the month's first instant, the last one clipped to the
// month boundary, and assigns each session by its own timestamp. Windows
// with no sessions are dropped: they consume time but produce no report
// line. Adjacent kept windows still satisfy start[i+1] >= end[i].
func PartitionMonth(monthStart, monthEnd time.Time, sessions []models.TherapySession) []Window {
	var windows []Window

	for cursor := monthStart; cursor.Before(monthEnd); {
		end := cursor.AddDate(0, 0, 7)
		if end.After(monthEnd) {
			end = monthEnd
		}

		window := Window{Start: cursor, End: end}
		for _, session := range sessions {
			if window.Contains(session.SessionDate) {
				window.Sessions = append(window.Sessions, session)
			}
		}
		if len(window.Sessions) > 0 {
			windows = append(windows, window)
		}

		cursor = end
	}

	return windows
}
