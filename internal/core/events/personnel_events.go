package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventSupervisorsReassigned = "sector.supervisors_reassigned"
	EventRequestStatusChanged  = "request.status_changed"
)

// NewSupervisorsReassigned is published after a reconciliation pass that
// changed at least one employee.
func NewSupervisorsReassigned(sectorID int64, sectorName string, changed int) Event {
	return BaseEvent{
		ID:        uuid.NewString(),
		Type:      EventSupervisorsReassigned,
		Timestamp: time.Now(),
		Data: map[string]interface{}{
			"sector_id":         sectorID,
			"sector_name":       sectorName,
			"changed_employees": changed,
		},
	}
}

// NewRequestStatusChanged is published when a leave request moves state.
func NewRequestStatusChanged(requestID int64, status string) Event {
	return BaseEvent{
		ID:        uuid.NewString(),
		Type:      EventRequestStatusChanged,
		Timestamp: time.Now(),
		Data: map[string]interface{}{
			"request_id": requestID,
			"status":     status,
		},
	}
}
