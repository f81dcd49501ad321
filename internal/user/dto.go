package user

// ValidationError marks input rejected before any storage call is attempted.
type ValidationError struct {
	Msg string
}

func (v ValidationError) Error() string { return v.Msg }

// CreateEmployeeDTO is the admin payload for provisioning an employee account.
type CreateEmployeeDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (dto CreateEmployeeDTO) Validate() error {
	if dto.Username == "" {
		return ValidationError{Msg: "username is required"}
	}
	if dto.Password == "" {
		return ValidationError{Msg: "password is required"}
	}
	return nil
}
