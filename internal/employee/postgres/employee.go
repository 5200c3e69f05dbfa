package postgres

import (
	"errors"
	"time"

	"gorm.io/gorm"

	attDatamodel "github.com/adminrec/personnel-management/internal/core/datamodel/attendance"
	empDatamodel "github.com/adminrec/personnel-management/internal/core/datamodel/employee"
	histDatamodel "github.com/adminrec/personnel-management/internal/core/datamodel/history"
	posDatamodel "github.com/adminrec/personnel-management/internal/core/datamodel/position"
	"github.com/adminrec/personnel-management/internal/employee"
)

var ErrEmployeeNotFound = errors.New("employee not found")

type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) List() ([]employee.Employee, error) {
	var rows []struct {
		empDatamodel.Employee
		PositionName string
	}
	err := r.db.Model(&empDatamodel.Employee{}).
		Select("employees.*, positions.name AS position_name").
		Joins("JOIN positions ON positions.id = employees.position_id").
		Where("employees.deleted_at IS NULL").
		Order("employees.last_name, employees.first_name").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]employee.Employee, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDomain(row.Employee, row.PositionName))
	}
	return out, nil
}

func (r *EmployeeRepository) GetByID(id int64) (*employee.Employee, error) {
	var record empDatamodel.Employee
	err := r.db.Where("id = ? AND deleted_at IS NULL", id).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}

	var positionName string
	r.db.Model(&posDatamodel.Position{}).Select("name").Where("id = ?", record.PositionID).Scan(&positionName)

	e := toDomain(record, positionName)
	return &e, nil
}

func (r *EmployeeRepository) Create(e *employee.Employee) error {
	record := empDatamodel.Employee{
		LastName:           e.LastName,
		FirstName:          e.FirstName,
		DNI:                e.DNI,
		Email:              e.Email,
		Address:            e.Address,
		BirthDate:          e.BirthDate,
		HireDate:           e.HireDate,
		Phone:              e.Phone,
		IsSectorSupervisor: e.IsSectorSupervisor,
		PositionID:         e.PositionID,
		SupervisorID:       e.SupervisorID,
	}
	if err := r.db.Create(&record).Error; err != nil {
		return err
	}
	e.ID = record.ID
	return nil
}

func (r *EmployeeRepository) Update(e *employee.Employee) error {
	return r.db.Model(&empDatamodel.Employee{}).
		Where("id = ?", e.ID).
		Updates(map[string]interface{}{
			"last_name":   e.LastName,
			"first_name":  e.FirstName,
			"dni":         e.DNI,
			"email":       e.Email,
			"address":     e.Address,
			"birth_date":  e.BirthDate,
			"hire_date":   e.HireDate,
			"phone":       e.Phone,
			"position_id": e.PositionID,
			"updated_at":  time.Now(),
		}).Error
}

func (r *EmployeeRepository) SoftDelete(id int64) error {
	return r.db.Model(&empDatamodel.Employee{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"deleted_at": time.Now(),
			"updated_at": time.Now(),
		}).Error
}

func (r *EmployeeRepository) PositionExists(positionID int64) (bool, error) {
	var count int64
	err := r.db.Model(&posDatamodel.Position{}).
		Where("id = ? AND deleted_at IS NULL", positionID).
		Count(&count).Error
	return count > 0, err
}

func (r *EmployeeRepository) OpenHistoryEntry(employeeID, positionID int64) error {
	return r.db.Create(&histDatamodel.PositionHistory{
		EmployeeID: employeeID,
		PositionID: positionID,
		StartedOn:  time.Now(),
	}).Error
}

func (r *EmployeeRepository) CloseCurrentHistoryEntry(employeeID int64) error {
	return r.db.Model(&histDatamodel.PositionHistory{}).
		Where("employee_id = ? AND ended_on IS NULL", employeeID).
		Update("ended_on", time.Now()).Error
}

func (r *EmployeeRepository) HistoryOf(employeeID int64) ([]employee.HistoryEntry, error) {
	var records []histDatamodel.PositionHistory
	err := r.db.Where("employee_id = ?", employeeID).
		Order("started_on").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	out := make([]employee.HistoryEntry, 0, len(records))
	for _, record := range records {
		out = append(out, employee.HistoryEntry{
			ID:         record.ID,
			PositionID: record.PositionID,
			StartedOn:  record.StartedOn,
			EndedOn:    record.EndedOn,
		})
	}
	return out, nil
}

// ListByEmployeeID implements employee.AttendanceReader.
func (r *EmployeeRepository) ListByEmployeeID(employeeID int64) ([]employee.Attendance, error) {
	var records []attDatamodel.Attendance
	err := r.db.Where("employee_id = ?", employeeID).
		Order("created_at").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	out := make([]employee.Attendance, 0, len(records))
	for _, record := range records {
		out = append(out, employee.Attendance{
			ID:        record.ID,
			CheckedIn: record.CreatedAt,
		})
	}
	return out, nil
}

func toDomain(record empDatamodel.Employee, positionName string) employee.Employee {
	return employee.Employee{
		ID:                 record.ID,
		LastName:           record.LastName,
		FirstName:          record.FirstName,
		DNI:                record.DNI,
		Email:              record.Email,
		Address:            record.Address,
		BirthDate:          record.BirthDate,
		HireDate:           record.HireDate,
		Phone:              record.Phone,
		IsSectorSupervisor: record.IsSectorSupervisor,
		PositionID:         record.PositionID,
		PositionName:       positionName,
		SupervisorID:       record.SupervisorID,
	}
}
