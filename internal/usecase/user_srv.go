package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"she-fix/internal/data/entity"
	"she-fix/internal/data/repository"
	"she-fix/internal/dto/response"
	"she-fix/internal/filter"
)

type UserService interface {
	// GetWorkers lists every worker; a non-empty query narrows by name or profession.
	GetWorkers(ctx context.Context, query string) ([]response.UserResponse, error)
}

type userService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		log:      log.With(zap.String("service", "user")),
	}
}

func (us *userService) GetWorkers(ctx context.Context, query string) ([]response.UserResponse, error) {
	workers, err := us.userRepo.FindByRole(ctx, entity.RoleWorker)
	if err != nil {
		us.log.Error("Failed to get workers", zap.Error(err))
		return nil, fmt.Errorf("failed to get workers")
	}

	workerResponses := make([]response.UserResponse, len(workers))
	for i, worker := range workers {
		workerResponses[i] = response.UserToResponse(worker)
	}

	result := filter.Workers(workerResponses, query)

	us.log.Info("Workers retrieved",
		zap.Int("count", len(result)),
		zap.Int("total", len(workers)),
		zap.String("query", query),
	)

	return result, nil
}
