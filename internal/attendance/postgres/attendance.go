package postgres

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/adminrec/personnel-management/internal/attendance"
	attDatamodel "github.com/adminrec/personnel-management/internal/core/datamodel/attendance"
	empDatamodel "github.com/adminrec/personnel-management/internal/core/datamodel/employee"
)

var ErrEmployeeNotFound = errors.New("employee not found")

type AttendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

func (r *AttendanceRepository) EmployeeIDByDNI(dni int) (int64, error) {
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

func (r *AttendanceRepository) HasCheckInOn(employeeID int64, day time.Time) (bool, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.Add(24 * time.Hour)

	var count int64
	err := r.db.Model(&attDatamodel.Attendance{}).
		Where("employee_id = ? AND created_at >= ? AND created_at < ?", employeeID, start, end).
		Count(&count).Error
	return count > 0, err
}

func (r *AttendanceRepository) Create(a *attendance.Attendance) error {
	record := attDatamodel.Attendance{
		EmployeeID: a.EmployeeID,
		CreatedAt:  a.CheckedIn,
		UpdatedAt:  a.CheckedIn,
	}
	if err := r.db.Create(&record).Error; err != nil {
		return err
	}
	a.ID = record.ID
	return nil
}

func (r *AttendanceRepository) ListByEmployeeID(employeeID int64) ([]attendance.Attendance, error) {
	var records []attDatamodel.Attendance
	err := r.db.Where("employee_id = ?", employeeID).
		Order("created_at").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	out := make([]attendance.Attendance, 0, len(records))
	for _, record := range records {
		out = append(out, attendance.Attendance{
			ID:         record.ID,
			EmployeeID: record.EmployeeID,
			CheckedIn:  record.CreatedAt,
		})
	}
	return out, nil
}
