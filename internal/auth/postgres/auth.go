package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/adminrec/personnel-management/internal/auth"
	accountDatamodel "github.com/adminrec/personnel-management/internal/core/datamodel/account"
	employeeDatamodel "github.com/adminrec/personnel-management/internal/core/datamodel/employee"
)

var ErrAccountNotFound = errors.New("account not found")
var ErrEmployeeNotFound = errors.New("employee not found")

// AccountRepository implements auth.AccountRepository using GORM. Lookups go
// through the employee dni and exclude soft-deleted accounts, so a deleted
// account can never authenticate.
type AccountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) GetByEmployeeDNI(dni int) (*auth.Account, error) {
	var acc accountDatamodel.Account
	err := r.db.
		Joins("JOIN employees ON employees.id = accounts.employee_id").
		Where("employees.dni = ? AND accounts.deleted_at IS NULL", dni).
		First(&acc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	role, err := auth.RoleFromString(acc.Role)
	if err != nil {
		return nil, err
	}

	return &auth.Account{
		ID:           acc.ID,
		EmployeeID:   acc.EmployeeID,
		PasswordHash: acc.PasswordHash,
		Role:         role,
		CreatedAt:    acc.CreatedAt,
		UpdatedAt:    acc.UpdatedAt,
	}, nil
}

func (r *AccountRepository) ExistsForEmployeeDNI(dni int) (bool, error) {
	var count int64
	err := r.db.Model(&accountDatamodel.Account{}).
		Joins("JOIN employees ON employees.id = accounts.employee_id").
		Where("employees.dni = ? AND accounts.deleted_at IS NULL", dni).
		Count(&count).Error
	return count > 0, err
}

func (r *AccountRepository) Create(account *auth.Account) error {
	record := accountDatamodel.Account{
		EmployeeID:   account.EmployeeID,
		PasswordHash: account.PasswordHash,
		Role:         account.Role.String(),
	}
	if err := r.db.Create(&record).Error; err != nil {
		return err
	}
	account.ID = record.ID
	return nil
}

// SetRoleByEmployeeDNI updates the role of the account bound to an employee.
// Returns false when the employee has no account; callers treat that as a
// skip, not a failure.
func (r *AccountRepository) SetRoleByEmployeeDNI(dni int, role string) (bool, error) {
	result := r.db.Model(&accountDatamodel.Account{}).
		Where("employee_id = (?)",
			r.db.Model(&employeeDatamodel.Employee{}).Select("id").Where("dni = ?", dni)).
		Where("deleted_at IS NULL").
		Update("role", role)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// EmployeeDirectory implements auth.EmployeeDirectory against the employees
// table.
type EmployeeDirectory struct {
	db *gorm.DB
}

func NewEmployeeDirectory(db *gorm.DB) *EmployeeDirectory {
	return &EmployeeDirectory{db: db}
}

func (d *EmployeeDirectory) GetByDNI(dni int) (*auth.EmployeeInfo, error) {
	var emp employeeDatamodel.Employee
	err := d.db.Where("dni = ? AND deleted_at IS NULL", dni).First(&emp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}

	return &auth.EmployeeInfo{
		ID:                 emp.ID,
		DNI:                emp.DNI,
		FirstName:          emp.FirstName,
		LastName:           emp.LastName,
		IsSectorSupervisor: emp.IsSectorSupervisor,
	}, nil
}
