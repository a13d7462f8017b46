// Package inquiry stores submitted questionnaire forms and tracks their
// workflow status.
package inquiry

import (
	"time"

	"loadup-backend/internal/model"
)

// Status is an inquiry's place in the fulfillment process.
type Status string

const (
	StatusNew       Status = "new"
	StatusContacted Status = "contacted"
	StatusCompleted Status = "completed"
)

// Valid reports whether s is a known status value.
func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusContacted, StatusCompleted:
		return true
	}
	return false
}

// Inquiry is one submitted customer request. Everything but Status is frozen
// at submission time.
type Inquiry struct {
	ID        string     `json:"id"`
	Timestamp time.Time  `json:"timestamp"`
	Form      model.Form `json:"formData"`
	Status    Status     `json:"status"`
}
