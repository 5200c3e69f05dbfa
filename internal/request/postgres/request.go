package postgres

import (
	"errors"
	"time"

	"gorm.io/gorm"

	empDatamodel "github.com/adminrec/personnel-management/internal/core/datamodel/employee"
	reqDatamodel "github.com/adminrec/personnel-management/internal/core/datamodel/request"
	"github.com/adminrec/personnel-management/internal/request"
)

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrRequestNotFound  = errors.New("request not found")
)

type RequestRepository struct {
	db *gorm.DB
}

func NewRequestRepository(db *gorm.DB) *RequestRepository {
	return &RequestRepository{db: db}
}

func (r *RequestRepository) EmployeeIDByDNI(dni int) (int64, error) {
	var id int64
	err := r.db.Model(&empDatamodel.Employee{}).
		Select("id").
		Where("dni = ? AND deleted_at IS NULL", dni).
		Scan(&id).Error
	if err != nil {
		return 0, err
	}
	if id == 0 {
		return 0, ErrEmployeeNotFound
	}
	return id, nil
}

func (r *RequestRepository) Create(req *request.Request) error {
	record := reqDatamodel.Request{
		RequestType:  string(req.RequestType),
		DurationDays: req.DurationDays,
		Reason:       req.Reason,
		Status:       string(req.Status),
		EmployeeID:   req.EmployeeID,
	}
	if err := r.db.Create(&record).Error; err != nil {
		return err
	}
	req.ID = record.ID
	req.CreatedAt = record.CreatedAt
	return nil
}

func (r *RequestRepository) GetByID(id int64) (*request.Request, error) {
	var record reqDatamodel.Request
	err := r.db.Where("id = ? AND deleted_at IS NULL", id).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	req := toDomain(record, "")
	return &req, nil
}

func (r *RequestRepository) UpdateStatus(id int64, status request.Status) error {
	return r.db.Model(&reqDatamodel.Request{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     string(status),
			"updated_at": time.Now(),
		}).Error
}

func (r *RequestRepository) ListByEmployeeID(employeeID int64) ([]request.Request, error) {
	var records []reqDatamodel.Request
	err := r.db.Where("employee_id = ? AND deleted_at IS NULL", employeeID).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	out := make([]request.Request, 0, len(records))
	for _, record := range records {
		out = append(out, toDomain(record, ""))
	}
	return out, nil
}

// ListBySupervisorDNI returns the requests of every employee sharing a sector
// with the supervisor behind the dni.
func (r *RequestRepository) ListBySupervisorDNI(dni int) ([]request.Request, error) {
	var rows []struct {
		reqDatamodel.Request
		LastName  string
		FirstName string
	}
	err := r.db.Model(&reqDatamodel.Request{}).
		Select("requests.*, employees.last_name, employees.first_name").
		Joins("JOIN employees ON employees.id = requests.employee_id").
		Joins("JOIN positions ON positions.id = employees.position_id").
		Where(`positions.sector_id IN (
			SELECT p.sector_id FROM employees e
			JOIN positions p ON p.id = e.position_id
			WHERE e.dni = ? AND e.deleted_at IS NULL
		)`, dni).
		Where("requests.deleted_at IS NULL AND employees.deleted_at IS NULL").
		Order("requests.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]request.Request, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDomain(row.Request, row.LastName+", "+row.FirstName))
	}
	return out, nil
}

func toDomain(record reqDatamodel.Request, employeeName string) request.Request {
	return request.Request{
		ID:           record.ID,
		RequestType:  request.RequestType(record.RequestType),
		DurationDays: record.DurationDays,
		Reason:       record.Reason,
		Status:       request.Status(record.Status),
		EmployeeID:   record.EmployeeID,
		EmployeeName: employeeName,
		CreatedAt:    record.CreatedAt,
	}
}
