package models

import "time"

// ProgressEntry is a journal note about the state of the renovation.
//
// Earlier versions of the document keyed entries by their timestamp, which
// collides for two notes written in the same instant. Entries now carry a
// generated ID; documents without entry IDs get them assigned when
// normalized.
type ProgressEntry struct {
	ID          string    `json:"id,omitempty"`
	Date        time.Time `json:"date"`
	Note        string    `json:"note"`
	Attachments []string  `json:"attachments,omitempty"`
}
