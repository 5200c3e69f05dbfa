package auth

// LoginDTO is the transport shape for login requests. The identifier is the
// employee national ID, not an internal key.
type LoginDTO struct {
	DNI      int    `json:"employee_dni"`
	Password string `json:"password"`
}

// RegisterDTO creates an account for an existing employee.
type RegisterDTO struct {
	DNI      int    `json:"employee_dni"`
	Password string `json:"password"`
}

// LoginResponse is the wire shape of a successful login.
type LoginResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message"`
	Token        string `json:"token"`
	Role         string `json:"role"`
	EmployeeName string `json:"employee_complete_name"`
}

// ValidationError represents a simple validation error from DTO validation.
type ValidationError struct {
	Msg string
}

func (v ValidationError) Error() string { return v.Msg }

func (d LoginDTO) Validate() error {
	if d.DNI <= 0 {
		return ValidationError{Msg: "employee_dni is required"}
	}
	if d.Password == "" {
		return ValidationError{Msg: "password is required"}
	}
	return nil
}

func (d RegisterDTO) Validate() error {
	if d.DNI <= 0 {
		return ValidationError{Msg: "employee_dni is required"}
	}
	if len(d.Password) < 8 {
		return ValidationError{Msg: "password must be at least 8 characters"}
	}
	return nil
}
