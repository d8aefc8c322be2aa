package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"she-fix/internal/data/entity"
	"she-fix/internal/data/repository"
	"she-fix/internal/dto/request"
	"she-fix/internal/dto/response"
)

// KYCService is the liveness-check stub. Verify reports success for every input.
type KYCService interface {
	Verify(ctx context.Context, req *request.KYCRequest) *response.KYCResponse
}

type kycService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewKYCService(userRepo repository.UserRepository, log *zap.Logger) KYCService {
	return &kycService{
		userRepo: userRepo,
		log:      log.With(zap.String("service", "kyc")),
	}
}

func (s *kycService) Verify(ctx context.Context, req *request.KYCRequest) *response.KYCResponse {
	resp := &response.KYCResponse{
		Success: true,
		User:    response.KYCUser{IsVerified: true},
	}

	if req == nil {
		return resp
	}

	id, err := uuid.Parse(req.UserID)
	if err != nil {
		s.log.Warn("KYC for unknown user id", zap.String("user_id", req.UserID))
		return resp
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil || user == nil {
		s.log.Warn("KYC user lookup failed", zap.String("user_id", req.UserID), zap.Error(err))
		return resp
	}

	user.KYCStatus = entity.KYCStatusVerified
	if req.LivenessScore != nil {
		user.TrustScore = clampScore(*req.LivenessScore)
	}
	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, user); err != nil {
		s.log.Error("Failed to persist KYC result", zap.Error(err), zap.String("user_id", req.UserID))
		return resp
	}

	s.log.Info("User KYC verified",
		zap.String("user_id", user.ID.String()),
		zap.Float64("trust_score", user.TrustScore))

	resp.User.ID = user.ID.String()
	resp.User.TrustScore = user.TrustScore
	return resp
}

func clampScore(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
