package usecase

import (
	"context"

	"she-fix/internal/dto/response"
)

type AcademyService interface {
	ListModules(ctx context.Context) []response.ModuleResponse
}

type academyService struct {
	modules []response.ModuleResponse
}

func NewAcademyService() AcademyService {
	return &academyService{
		modules: []response.ModuleResponse{
			{
				ID:        1,
				Title:     "Electrical Basics (Hindi)",
				Language:  "hi",
				Duration:  "10 mins",
				Thumbnail: "https://images.unsplash.com/photo-1621905251189-08b45d6a269e?w=500&q=80",
			},
			{
				ID:        2,
				Title:     "Safe Plumbing (Marathi)",
				Language:  "mr",
				Duration:  "15 mins",
				Thumbnail: "https://images.unsplash.com/photo-1581244277943-fe4a9c777189?w=500&q=80",
			},
			{
				ID:        3,
				Title:     "Professional Cleaning (Tamil)",
				Language:  "ta",
				Duration:  "12 mins",
				Thumbnail: "https://images.unsplash.com/photo-1581578731117-10d52143b0e8?w=500&q=80",
			},
		},
	}
}

// ListModules returns a copy of the static catalog.
func (s *academyService) ListModules(_ context.Context) []response.ModuleResponse {
	out := make([]response.ModuleResponse, len(s.modules))
	copy(out, s.modules)
	return out
}
