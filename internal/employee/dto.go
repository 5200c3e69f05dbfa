package employee

import "time"

type EmployeeDTO struct {
	LastName   string     `json:"last_name"`
	FirstName  string     `json:"first_name"`
	DNI        int        `json:"dni"`
	Email      string     `json:"email"`
	Address    string     `json:"address"`
	BirthDate  *time.Time `json:"birth_date"`
	HireDate   *time.Time `json:"hire_date"`
	Phone      string     `json:"phone"`
	PositionID int64      `json:"position_id"`
}

// CreateEmployeeDTO carries the initial password for the account that gets
// registered alongside the employee.
type CreateEmployeeDTO struct {
	EmployeeDTO
	Password string `json:"password"`
}

type ValidationError struct {
	Msg string
}

func (v ValidationError) Error() string { return v.Msg }

func (d EmployeeDTO) Validate() error {
	if d.LastName == "" || d.FirstName == "" {
		return ValidationError{Msg: "first_name and last_name are required"}
	}
	if len(d.LastName) > 50 || len(d.FirstName) > 50 {
		return ValidationError{Msg: "names must be at most 50 characters"}
	}
	if d.DNI <= 0 {
		return ValidationError{Msg: "dni is required"}
	}
	if d.Email == "" {
		return ValidationError{Msg: "email is required"}
	}
	if d.PositionID <= 0 {
		return ValidationError{Msg: "position_id is required"}
	}
	return nil
}

func (d CreateEmployeeDTO) Validate() error {
	if err := d.EmployeeDTO.Validate(); err != nil {
		return err
	}
	if len(d.Password) < 8 {
		return ValidationError{Msg: "password must be at least 8 characters"}
	}
	return nil
}
