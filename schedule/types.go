package schedule

import "time"

// DateLayout is the calendar-date format used for keys and encodings.
const DateLayout = "2006-01-02"

// Event is one dated action derived from a lit grid cell.
type Event struct {
	// Date is a calendar date: midnight UTC, no time component.
	Date          time.Time
	Intensity     int
	SourceMessage string
}

// Day returns the event date as YYYY-MM-DD.
func (e Event) Day() string { return e.Date.Format(DateLayout) }

// record is the wire shape shared by every encoder.
type record struct {
	Date          string `json:"date" yaml:"date" cbor:"date"`
	Intensity     int    `json:"intensity" yaml:"intensity" cbor:"intensity"`
	SourceMessage string `json:"sourceMessage,omitempty" yaml:"sourceMessage,omitempty" cbor:"sourceMessage,omitempty"`
}

func toRecords(events []Event) []record {
	out := make([]record, len(events))
	for i, e := range events {
		out[i] = record{Date: e.Day(), Intensity: e.Intensity, SourceMessage: e.SourceMessage}
	}
	return out
}
