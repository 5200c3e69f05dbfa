package request

type CreateRequestDTO struct {
	RequestType  string `json:"request_type"`
	DurationDays int    `json:"duration_days"`
	Reason       string `json:"reason"`
}

type ChangeStatusDTO struct {
	Status string `json:"status"`
}

type ValidationError struct {
	Msg string
}

func (v ValidationError) Error() string { return v.Msg }

func (d CreateRequestDTO) Validate() error {
	if d.RequestType == "" {
		return ValidationError{Msg: "request_type is required"}
	}
	if d.DurationDays <= 0 {
		return ValidationError{Msg: "duration_days must be positive"}
	}
	if d.Reason == "" {
		return ValidationError{Msg: "reason is required"}
	}
	return nil
}

func (d ChangeStatusDTO) Validate() error {
	if d.Status == "" {
		return ValidationError{Msg: "status is required"}
	}
	return nil
}
