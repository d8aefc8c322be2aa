package request

type RegisterRequest struct {
	Name       string  `json:"name" validate:"required,max=120"`
	Email      string  `json:"email" validate:"required,email"`
	Phone      *string `json:"phone,omitempty" validate:"omitempty,min=10,max=15"`
	Password   string  `json:"password" validate:"required"`
	Role       string  `json:"role" validate:"required,oneof=worker seeker"`
	Profession *string `json:"profession,omitempty" validate:"required_if=Role worker,omitempty,max=80"`
	Language   string  `json:"language,omitempty" validate:"omitempty,max=10"`
}

// LoginRequest accepts the email directly or an identifier that may be an email or a phone.
type LoginRequest struct {
	Email      string `json:"email,omitempty" validate:"required_without=Identifier"`
	Identifier string `json:"identifier,omitempty"`
	Password   string `json:"password" validate:"required"`
}

// LoginID returns the identifier the user typed, preferring email.
func (r LoginRequest) LoginID() string {
	if r.Email != "" {
		return r.Email
	}
	return r.Identifier
}
