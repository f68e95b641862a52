package model

import "time"

type RecordStatus string

const (
	RecordStatusOpen   RecordStatus = "open"
	RecordStatusClosed RecordStatus = "closed"
)

// Record is one attendance session ("ATA").
type Record struct {
	ID        string       `json:"id"`
	Title     string       `json:"title"`
	Status    RecordStatus `json:"status"`
	CreatedAt time.Time    `json:"createdAt"`
}

func (r Record) IsOpen() bool {
	return r.Status == RecordStatusOpen
}

func (r Record) CreatedAtDisplay(loc *time.Location) string {
	return FormatDisplayTime(r.CreatedAt, loc)
}

// Same layout as pt-BR toLocaleString, e.g. "05/03/2025, 14:30:00".
const DisplayTimeLayout = "02/01/2006, 15:04:05"

func FormatDisplayTime(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(DisplayTimeLayout)
}
