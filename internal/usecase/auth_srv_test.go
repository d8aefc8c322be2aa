package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"she-fix/internal/data/entity"
	"she-fix/internal/dto/request"
)

func TestAuthService_Register(t *testing.T) {
	repo := newTestRepo()
	auth := NewAuthService(repo.User, zap.NewNop())

	user, err := auth.Register(context.Background(), &request.RegisterRequest{
		Name:       "Savita Devi",
		Email:      "Savita@Example.com",
		Phone:      strPtr("9876543210"),
		Password:   "123456",
		Role:       "worker",
		Profession: strPtr(" Cleaner "),
	})
	require.NoError(t, err)

	assert.Equal(t, "savita@example.com", user.Email)
	assert.Equal(t, entity.RoleWorker, user.Role)
	assert.Equal(t, "Cleaner", *user.Profession)
	assert.Equal(t, "en", user.Language)
	assert.Equal(t, "pending", user.KYCStatus)
	assert.False(t, user.IsVerified)

	stored, err := repo.User.FindByEmail(context.Background(), "savita@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "123456", stored.PasswordHash)
}

func TestAuthService_RegisterErrors(t *testing.T) {
	tests := []struct {
		name    string
		req     request.RegisterRequest
		wantErr string
	}{
		{
			name:    "missing name",
			req:     request.RegisterRequest{Email: "a@example.com", Password: "x", Role: "seeker"},
			wantErr: "validation failed",
		},
		{
			name:    "invalid email",
			req:     request.RegisterRequest{Name: "A", Email: "nope", Password: "x", Role: "seeker"},
			wantErr: "validation failed: email",
		},
		{
			name:    "unknown role",
			req:     request.RegisterRequest{Name: "A", Email: "a@example.com", Password: "x", Role: "customer"},
			wantErr: "validation failed: role",
		},
		{
			name:    "worker without profession",
			req:     request.RegisterRequest{Name: "A", Email: "a@example.com", Password: "x", Role: "worker", Profession: strPtr("  ")},
			wantErr: "validation failed: profession",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := NewAuthService(newTestRepo().User, zap.NewNop())
			_, err := auth.Register(context.Background(), &tt.req)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestAuthService_RegisterSeekerDropsProfession(t *testing.T) {
	auth := NewAuthService(newTestRepo().User, zap.NewNop())

	user, err := auth.Register(context.Background(), &request.RegisterRequest{
		Name:       "Anjali Gupta",
		Email:      "anjali@example.com",
		Password:   "123456",
		Role:       "seeker",
		Profession: strPtr("Homeowner"),
	})
	require.NoError(t, err)
	assert.Nil(t, user.Profession)
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	auth := NewAuthService(newTestRepo().User, zap.NewNop())
	registerUser(t, auth, "Riya", "riya@example.com", "worker")

	_, err := auth.Register(context.Background(), &request.RegisterRequest{
		Name:     "Other Riya",
		Email:    "RIYA@example.com",
		Password: "secret",
		Role:     "seeker",
	})
	require.Error(t, err)
	assert.Equal(t, "email already registered", err.Error())
}

func TestAuthService_Login(t *testing.T) {
	auth := NewAuthService(newTestRepo().User, zap.NewNop())

	registered, err := auth.Register(context.Background(), &request.RegisterRequest{
		Name:     "Priya Nair",
		Email:    "priya@example.com",
		Phone:    strPtr("9123456781"),
		Password: "123456",
		Role:     "seeker",
	})
	require.NoError(t, err)

	byEmail, err := auth.Login(context.Background(), &request.LoginRequest{Email: "Priya@example.com", Password: "123456"})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, byEmail.ID)
	assert.Equal(t, entity.RoleSeeker, byEmail.Role)

	byPhone, err := auth.Login(context.Background(), &request.LoginRequest{Identifier: "9123456781", Password: "123456"})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, byPhone.ID)

	_, err = auth.Login(context.Background(), &request.LoginRequest{Email: "priya@example.com", Password: "wrong"})
	require.Error(t, err)
	assert.Equal(t, "invalid credentials", err.Error())

	_, err = auth.Login(context.Background(), &request.LoginRequest{Email: "nobody@example.com", Password: "123456"})
	require.Error(t, err)
	assert.Equal(t, "invalid credentials", err.Error())
}
