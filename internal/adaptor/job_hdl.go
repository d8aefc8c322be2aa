package adaptor

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"she-fix/internal/dto/request"
	"she-fix/internal/filter"
	"she-fix/internal/usecase"
	"she-fix/pkg/utils"
)

type JobHandler struct {
	service usecase.JobService
	log     *zap.Logger
}

func NewJobHandler(service usecase.JobService, log *zap.Logger) *JobHandler {
	return &JobHandler{
		service: service,
		log:     log,
	}
}

// GetJobs handles GET /api/jobs?category=&location=&serviceType=&q=
func (h *JobHandler) GetJobs(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	f := filter.JobFilter{
		Category:    query.Get("category"),
		Location:    query.Get("location"),
		ServiceType: query.Get("serviceType"),
		Query:       query.Get("q"),
	}

	jobs, err := h.service.GetOpenJobs(r.Context(), f)
	if err != nil {
		handleServiceError(w, h.log, err, "get jobs")
		return
	}

	utils.ResponseOK(w, jobs)
}

// GetJobByID handles GET /api/jobs/{id}
func (h *JobHandler) GetJobByID(w http.ResponseWriter, r *http.Request) {
	job, err := h.service.GetJobByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get job")
		return
	}

	utils.ResponseOK(w, job)
}

// CreateJob handles POST /api/jobs (seeker only)
func (h *JobHandler) CreateJob(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Acting user required")
		return
	}

	var req request.JobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	job, err := h.service.CreateJob(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create job")
		return
	}

	utils.ResponseCreated(w, job)
}

// AcceptJob handles POST /api/jobs/{id}/accept (worker only)
func (h *JobHandler) AcceptJob(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Acting user required")
		return
	}

	job, err := h.service.AcceptJob(r.Context(), chi.URLParam(r, "id"), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "accept job")
		return
	}

	utils.ResponseOK(w, job)
}

// CompleteJob handles POST /api/jobs/{id}/complete
func (h *JobHandler) CompleteJob(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Acting user required")
		return
	}

	job, err := h.service.CompleteJob(r.Context(), chi.URLParam(r, "id"), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "complete job")
		return
	}

	utils.ResponseOK(w, job)
}
