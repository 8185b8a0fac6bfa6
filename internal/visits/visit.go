package visits

import "time"

// DayFormat is the wire format for gym visit days, date only.
const DayFormat = "2006-01-02"

// Visit marks gym attendance on a given day. The existence of the row is
// the state: a day with a visit row counts as attended, a day without
// one does not.
type Visit struct {
	ID  int       `json:"id"`
	Day time.Time `json:"day"`
}

// Normalize truncates a timestamp to its calendar day.
func Normalize(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
}
