// Package filter holds the job and worker search rules shared by the API's
// optional query parameters and the client dashboard's local search.
package filter

import (
	"strings"

	"she-fix/internal/dto/response"
)

// All is the category value the dashboard uses for "no category filter".
const All = "all"

// JobFilter narrows a job list. Zero-valued fields do not filter.
type JobFilter struct {
	Category    string // exact match, case-insensitive; "all" disables
	Location    string // substring, case-insensitive
	ServiceType string // exact match, case-insensitive
	Query       string // substring over title, category, location and description
}

func (f JobFilter) IsZero() bool {
	return f == JobFilter{}
}

// Matches reports whether job satisfies every set criterion.
func (f JobFilter) Matches(job response.JobResponse) bool {
	if c := strings.TrimSpace(f.Category); c != "" && !strings.EqualFold(c, All) {
		if !strings.EqualFold(job.Category, c) {
			return false
		}
	}
	if l := strings.TrimSpace(f.Location); l != "" && !containsFold(job.Location, l) {
		return false
	}
	if st := strings.TrimSpace(f.ServiceType); st != "" && !strings.EqualFold(job.ServiceType, st) {
		return false
	}
	if q := strings.TrimSpace(f.Query); q != "" {
		desc := ""
		if job.Description != nil {
			desc = *job.Description
		}
		if !containsFold(job.Title, q) && !containsFold(job.Category, q) &&
			!containsFold(job.Location, q) && !containsFold(desc, q) {
			return false
		}
	}
	return true
}

// Jobs returns the jobs matching f, preserving input order. The result is never nil.
func Jobs(jobs []response.JobResponse, f JobFilter) []response.JobResponse {
	out := make([]response.JobResponse, 0, len(jobs))
	for _, job := range jobs {
		if f.Matches(job) {
			out = append(out, job)
		}
	}
	return out
}

// Workers returns the workers whose name or profession contains query.
func Workers(workers []response.UserResponse, query string) []response.UserResponse {
	q := strings.TrimSpace(query)
	out := make([]response.UserResponse, 0, len(workers))
	for _, w := range workers {
		profession := ""
		if w.Profession != nil {
			profession = *w.Profession
		}
		if q == "" || containsFold(w.Name, q) || containsFold(profession, q) {
			out = append(out, w)
		}
	}
	return out
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
