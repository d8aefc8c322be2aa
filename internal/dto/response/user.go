package response

import (
	"time"

	"she-fix/internal/data/entity"
)

// UserResponse is the stored user record as the client keeps it. The password hash
// never leaves the server.
type UserResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Phone      *string         `json:"phone,omitempty"`
	Role       entity.UserRole `json:"role"`
	Profession *string         `json:"profession,omitempty"`
	Language   string          `json:"language"`
	TrustScore float64         `json:"trustScore"`
	KYCStatus  string          `json:"kycStatus"`
	IsVerified bool            `json:"isVerified"`
	CreatedAt  time.Time       `json:"createdAt"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:         user.ID.String(),
		Name:       user.Name,
		Email:      user.Email,
		Phone:      user.Phone,
		Role:       user.Role,
		Profession: user.Profession,
		Language:   user.Language,
		TrustScore: user.TrustScore,
		KYCStatus:  string(user.KYCStatus),
		IsVerified: user.IsVerified(),
		CreatedAt:  user.CreatedAt,
	}
}
