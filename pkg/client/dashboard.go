package client

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"she-fix/internal/data/entity"
	"she-fix/internal/dto/response"
	"she-fix/internal/filter"
)

var (
	ErrNoSession       = errors.New("dashboard: no logged-in user")
	ErrWrongRole       = errors.New("dashboard: action not available for this role")
	ErrUnknownJob      = errors.New("dashboard: job not in the fetched list")
	ErrUnknownWorker   = errors.New("dashboard: worker not in the fetched list")
	ErrAlreadyAccepted = errors.New("dashboard: job already accepted")
	ErrAlreadyBooked   = errors.New("dashboard: worker already booked")
)

// DashboardAPI is the part of Client the dashboard needs.
type DashboardAPI interface {
	Jobs(ctx context.Context, f filter.JobFilter) ([]response.JobResponse, error)
	Workers(ctx context.Context, query string) ([]response.UserResponse, error)
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}

// Dashboard is the role-conditional home view. Workers see open jobs, seekers see
// workers. Search runs locally over the last fetched set, and Accept and Book
// only change local state.
type Dashboard struct {
	api  DashboardAPI
	user response.UserResponse

	mu       sync.Mutex
	jobs     []response.JobResponse
	workers  []response.UserResponse
	accepted map[string]response.JobResponse
	booked   map[string]response.UserResponse
}

func NewDashboard(api DashboardAPI, user *response.UserResponse) (*Dashboard, error) {
	if user == nil {
		return nil, ErrNoSession
	}
	if !user.Role.Valid() {
		return nil, fmt.Errorf("dashboard: unknown role %q", user.Role)
	}
	return &Dashboard{
		api:      api,
		user:     *user,
		accepted: make(map[string]response.JobResponse),
		booked:   make(map[string]response.UserResponse),
	}, nil
}

func (d *Dashboard) User() response.UserResponse {
	return d.user
}

func (d *Dashboard) Role() entity.UserRole {
	return d.user.Role
}

// Refresh fetches the data source for the user's role and replaces the local set.
func (d *Dashboard) Refresh(ctx context.Context) error {
	switch d.user.Role {
	case entity.RoleWorker:
		jobs, err := d.api.Jobs(ctx, filter.JobFilter{})
		if err != nil {
			return fmt.Errorf("dashboard: fetch jobs: %w", err)
		}
		d.mu.Lock()
		d.jobs = jobs
		d.mu.Unlock()
	case entity.RoleSeeker:
		workers, err := d.api.Workers(ctx, "")
		if err != nil {
			return fmt.Errorf("dashboard: fetch workers: %w", err)
		}
		d.mu.Lock()
		d.workers = workers
		d.mu.Unlock()
	}
	return nil
}

// Jobs returns fetched jobs matching f, leaving out jobs accepted locally.
func (d *Dashboard) Jobs(f filter.JobFilter) []response.JobResponse {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]response.JobResponse, 0, len(d.jobs))
	for _, job := range filter.Jobs(d.jobs, f) {
		if _, ok := d.accepted[job.ID]; ok {
			continue
		}
		out = append(out, job)
	}
	return out
}

func (d *Dashboard) Workers(query string) []response.UserResponse {
	d.mu.Lock()
	defer d.mu.Unlock()

	return filter.Workers(d.workers, query)
}

// Accept marks a fetched job as taken by this worker. Nothing is sent to the server.
func (d *Dashboard) Accept(jobID string) (response.JobResponse, error) {
	if d.user.Role != entity.RoleWorker {
		return response.JobResponse{}, ErrWrongRole
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.accepted[jobID]; ok {
		return response.JobResponse{}, ErrAlreadyAccepted
	}
	for _, job := range d.jobs {
		if job.ID == jobID {
			job.Status = string(entity.JobStatusAccepted)
			acceptedBy := d.user.ID
			job.AcceptedBy = &acceptedBy
			d.accepted[jobID] = job
			return job, nil
		}
	}
	return response.JobResponse{}, ErrUnknownJob
}

// Book marks a fetched worker as booked by this seeker. Nothing is sent to the server.
func (d *Dashboard) Book(workerID string) (response.UserResponse, error) {
	if d.user.Role != entity.RoleSeeker {
		return response.UserResponse{}, ErrWrongRole
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.booked[workerID]; ok {
		return response.UserResponse{}, ErrAlreadyBooked
	}
	for _, worker := range d.workers {
		if worker.ID == workerID {
			d.booked[workerID] = worker
			return worker, nil
		}
	}
	return response.UserResponse{}, ErrUnknownWorker
}

func (d *Dashboard) Accepted() []response.JobResponse {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]response.JobResponse, 0, len(d.accepted))
	for _, job := range d.jobs {
		if a, ok := d.accepted[job.ID]; ok {
			out = append(out, a)
		}
	}
	return out
}

func (d *Dashboard) IsBooked(workerID string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	_, ok := d.booked[workerID]
	return ok
}

// voiceStopWords are dropped from a translated command before keyword search.
var voiceStopWords = map[string]bool{
	"show": true, "jobs": true, "work": true, "need": true, "want": true,
	"find": true, "give": true, "please": true, "tomorrow": true, "today": true,
}

// VoiceSearch transcribes a command, translates it to English through the API and
// searches the fetched jobs by its keywords. When no keyword matches, every
// visible job is returned with the translated text.
func (d *Dashboard) VoiceSearch(ctx context.Context, t Transcriber) (string, []response.JobResponse, error) {
	if d.user.Role != entity.RoleWorker {
		return "", nil, ErrWrongRole
	}

	transcript, err := t.Transcribe(ctx)
	if err != nil {
		return "", nil, fmt.Errorf("dashboard: transcribe: %w", err)
	}

	text := transcript.Text
	if transcript.Language != "" && !strings.EqualFold(transcript.Language, "en") {
		translated, err := d.api.Translate(ctx, transcript.Text, transcript.Language, "en")
		if err != nil {
			return "", nil, fmt.Errorf("dashboard: translate: %w", err)
		}
		text = translated
	}

	seen := make(map[string]bool)
	var matched []response.JobResponse
	for _, word := range keywords(text) {
		for _, job := range d.Jobs(filter.JobFilter{Query: word}) {
			if !seen[job.ID] {
				seen[job.ID] = true
				matched = append(matched, job)
			}
		}
	}

	if len(matched) == 0 {
		return text, d.Jobs(filter.JobFilter{}), nil
	}
	return text, matched, nil
}

func keywords(text string) []string {
	var out []string
	for _, w := range strings.Fields(strings.ToLower(text)) {
		w = strings.Trim(w, ".,!?\"'")
		if len(w) < 4 || voiceStopWords[w] {
			continue
		}
		out = append(out, w)
	}
	return out
}
