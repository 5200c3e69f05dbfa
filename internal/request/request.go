package request

import (
	"strings"
	"time"

	"github.com/adminrec/personnel-management/internal"
)

type RequestType string

const (
	TypeVacation RequestType = "VACACIONES"
	TypePermit   RequestType = "PERMISO"
	TypeLicense  RequestType = "LICENCIA"
)

type Status string

const (
	StatusPending  Status = "PENDIENTE"
	StatusRejected Status = "RECHAZADO"
	StatusAccepted Status = "ACEPTADO"
)

func TypeFromString(s string) (RequestType, error) {
	switch RequestType(strings.ToUpper(s)) {
	case TypeVacation, TypePermit, TypeLicense:
		return RequestType(strings.ToUpper(s)), nil
	default:
		return "", internal.NewValidationError("unknown request type: "+s, internal.ErrCodeInvalidRequestType)
	}
}

func StatusFromString(s string) (Status, error) {
	switch Status(strings.ToUpper(s)) {
	case StatusPending, StatusRejected, StatusAccepted:
		return Status(strings.ToUpper(s)), nil
	default:
		return "", internal.NewValidationError("unknown request status: "+s, internal.ErrCodeInvalidRequestStatus)
	}
}

// Request is a leave request. Every request starts PENDIENTE and is resolved
// by a supervisor or admin.
type Request struct {
	ID           int64       `json:"id"`
	RequestType  RequestType `json:"request_type"`
	DurationDays int         `json:"duration_days"`
	Reason       string      `json:"reason"`
	Status       Status      `json:"status"`
	EmployeeID   int64       `json:"employee_id"`
	EmployeeName string      `json:"employee_name,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
}

type Repository interface {
	EmployeeIDByDNI(dni int) (int64, error)
	Create(req *Request) error
	GetByID(id int64) (*Request, error)
	UpdateStatus(id int64, status Status) error
	ListByEmployeeID(employeeID int64) ([]Request, error)
	ListBySupervisorDNI(dni int) ([]Request, error)
}
