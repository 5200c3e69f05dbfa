package sector

// ReassignSupervisorsDTO is the payload of the supervisor reassignment
// endpoint: the full target set of supervising employee IDs for the sector.
type ReassignSupervisorsDTO struct {
	SupervisorIDs []int64 `json:"supervisor_ids"`
}

func (d ReassignSupervisorsDTO) Validate() error {
	for _, id := range d.SupervisorIDs {
		if id <= 0 {
			return ValidationError{Msg: "supervisor_ids must be positive employee ids"}
		}
	}
	return nil
}

type ValidationError struct {
	Msg string
}

func (v ValidationError) Error() string { return v.Msg }
