package postgres

import (
	"errors"
	"time"

	"gorm.io/gorm"

	seDatamodel "github.com/adminrec/personnel-management/internal/core/datamodel/employee"
	posDatamodel "github.com/adminrec/personnel-management/internal/core/datamodel/position"
	secDatamodel "github.com/adminrec/personnel-management/internal/core/datamodel/sector"
	"github.com/adminrec/personnel-management/internal/sector"
)

var ErrSectorNotFound = errors.New("sector not found")

// SectorRepository implements sector.Repository plus the employee flag writer
// using GORM.
type SectorRepository struct {
	db *gorm.DB
}

func NewSectorRepository(db *gorm.DB) *SectorRepository {
	return &SectorRepository{db: db}
}

func (r *SectorRepository) GetByID(id int64) (*sector.Sector, error) {
	var sec secDatamodel.Sector
	err := r.db.Where("id = ? AND deleted_at IS NULL", id).First(&sec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSectorNotFound
		}
		return nil, err
	}
	return &sector.Sector{ID: sec.ID, Name: sec.Name}, nil
}

func (r *SectorRepository) ListDetails() ([]sector.SectorDetail, error) {
	var sectors []secDatamodel.Sector
	if err := r.db.Where("deleted_at IS NULL").Order("name").Find(&sectors).Error; err != nil {
		return nil, err
	}

	details := make([]sector.SectorDetail, 0, len(sectors))
	for _, sec := range sectors {
		detail, err := r.buildDetail(sec)
		if err != nil {
			return nil, err
		}
		details = append(details, *detail)
	}
	return details, nil
}

func (r *SectorRepository) Detail(id int64) (*sector.SectorDetail, error) {
	var sec secDatamodel.Sector
	err := r.db.Where("id = ? AND deleted_at IS NULL", id).First(&sec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSectorNotFound
		}
		return nil, err
	}
	return r.buildDetail(sec)
}

func (r *SectorRepository) buildDetail(sec secDatamodel.Sector) (*sector.SectorDetail, error) {
	var positions []posDatamodel.Position
	err := r.db.Where("sector_id = ? AND deleted_at IS NULL", sec.ID).Order("name").Find(&positions).Error
	if err != nil {
		return nil, err
	}

	detail := &sector.SectorDetail{
		ID:        sec.ID,
		Name:      sec.Name,
		Positions: make([]sector.PositionDetail, 0, len(positions)),
	}

	for _, pos := range positions {
		var employees []seDatamodel.Employee
		err := r.db.Where("position_id = ? AND deleted_at IS NULL", pos.ID).Order("last_name").Find(&employees).Error
		if err != nil {
			return nil, err
		}

		posDetail := sector.PositionDetail{
			ID:        pos.ID,
			Name:      pos.Name,
			Employees: make([]sector.EmployeeDetail, 0, len(employees)),
		}
		for _, emp := range employees {
			posDetail.Employees = append(posDetail.Employees, sector.EmployeeDetail{
				ID:                 emp.ID,
				LastName:           emp.LastName,
				FirstName:          emp.FirstName,
				DNI:                emp.DNI,
				Email:              emp.Email,
				Address:            emp.Address,
				BirthDate:          emp.BirthDate,
				HireDate:           emp.HireDate,
				Phone:              emp.Phone,
				IsSectorSupervisor: emp.IsSectorSupervisor,
				SupervisorID:       emp.SupervisorID,
			})
		}
		detail.Positions = append(detail.Positions, posDetail)
	}

	return detail, nil
}

// EmployeesOf flattens every position under the sector into one employee
// list with just the state reconciliation reads.
func (r *SectorRepository) EmployeesOf(sectorID int64) ([]sector.EmployeeState, error) {
	var rows []struct {
		ID                 int64
		DNI                int
		IsSectorSupervisor bool
	}
	err := r.db.Model(&seDatamodel.Employee{}).
		Select("employees.id, employees.dni, employees.is_sector_supervisor").
		Joins("JOIN positions ON positions.id = employees.position_id").
		Where("positions.sector_id = ? AND employees.deleted_at IS NULL", sectorID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	states := make([]sector.EmployeeState, 0, len(rows))
	for _, row := range rows {
		states = append(states, sector.EmployeeState{
			ID:         row.ID,
			DNI:        row.DNI,
			Supervisor: row.IsSectorSupervisor,
		})
	}
	return states, nil
}

func (r *SectorRepository) SoftDelete(id int64) error {
	return r.db.Model(&secDatamodel.Sector{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"deleted_at": time.Now(),
			"updated_at": time.Now(),
		}).Error
}

// SetSupervisorFlag persists one employee's supervisor flag. Each call is
// its own unit of work; reconciliation does not wrap these in a transaction.
func (r *SectorRepository) SetSupervisorFlag(employeeID int64, supervisor bool) error {
	return r.db.Model(&seDatamodel.Employee{}).
		Where("id = ?", employeeID).
		Updates(map[string]interface{}{
			"is_sector_supervisor": supervisor,
			"updated_at":           time.Now(),
		}).Error
}
