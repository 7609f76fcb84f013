package app

import "time"

// maxWindowDays is the widest date range the contributions query accepts.
const maxWindowDays = 365

// Windows splits [created, now) into consecutive half-open windows of at
// most 365 days each. Windows tile the full range: no gap, no overlap, the
// last window ends exactly at now. An account younger than 365 days yields
// a single window.
func Windows(created, now time.Time) []Window {
	if !created.Before(now) {
		return nil
	}

	var ws []Window
	cursor := created
	for cursor.Before(now) {
		end := cursor.AddDate(0, 0, maxWindowDays)
		if end.After(now) {
			end = now
		}
		ws = append(ws, Window{From: cursor, To: end})
		cursor = end
	}

	return ws
}
