package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"she-fix/internal/data/repository"
	"she-fix/internal/dto/request"
	"she-fix/internal/dto/response"
)

func strPtr(s string) *string { return &s }

func newTestRepo() *repository.Repository {
	return repository.NewMemoryRepository(zap.NewNop())
}

func registerUser(t *testing.T, auth AuthService, name, email, role string) *response.UserResponse {
	t.Helper()
	req := &request.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: "123456",
		Role:     role,
	}
	if role == "worker" {
		req.Profession = strPtr("Cleaner")
	}
	user, err := auth.Register(context.Background(), req)
	require.NoError(t, err)
	return user
}
