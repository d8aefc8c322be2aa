package entity

type UserRole string

const (
	RoleWorker UserRole = "worker"
	RoleSeeker UserRole = "seeker"
)

func (r UserRole) Valid() bool {
	return r == RoleWorker || r == RoleSeeker
}

type KYCStatus string

const (
	KYCStatusPending  KYCStatus = "pending"
	KYCStatusVerified KYCStatus = "verified"
	KYCStatusRejected KYCStatus = "rejected"
)

// User is either a worker offering services or a seeker hiring them.
// Email is the unique contact; role never changes after registration.
type User struct {
	Base
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	Phone        *string   `db:"phone"`
	PasswordHash string    `db:"password"`
	Role         UserRole  `db:"role"`
	Profession   *string   `db:"profession"`
	TrustScore   float64   `db:"trust_score"`
	KYCStatus    KYCStatus `db:"kyc_status"`
	Language     string    `db:"language"`
}

// IsVerified backs the Pink-Shield badge.
func (u *User) IsVerified() bool {
	return u.KYCStatus == KYCStatusVerified
}
