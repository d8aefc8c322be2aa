package response

import (
	"time"

	"she-fix/internal/data/entity"
)

type JobResponse struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Location       string    `json:"location"`
	Category       string    `json:"category"`
	Description    *string   `json:"description,omitempty"`
	Pay            float64   `json:"pay"`
	Unit           string    `json:"unit"`
	ServiceType    string    `json:"serviceType"`
	Duration       string    `json:"duration"`
	Status         string    `json:"status"`
	SafetyVerified bool      `json:"safetyVerified"`
	PostedBy       string    `json:"postedBy"`
	AcceptedBy     *string   `json:"acceptedBy,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

func JobToResponse(job *entity.Job) JobResponse {
	resp := JobResponse{
		ID:             job.ID.String(),
		Title:          job.Title,
		Location:       job.Location,
		Category:       job.Category,
		Description:    job.Description,
		Pay:            job.Pay,
		Unit:           string(job.Unit),
		ServiceType:    string(job.ServiceType),
		Duration:       job.Duration,
		Status:         string(job.Status),
		SafetyVerified: job.SafetyVerified,
		PostedBy:       job.PostedBy.String(),
		CreatedAt:      job.CreatedAt,
	}

	if job.AcceptedBy != nil {
		acceptedBy := job.AcceptedBy.String()
		resp.AcceptedBy = &acceptedBy
	}

	return resp
}
