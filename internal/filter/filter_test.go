package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"she-fix/internal/dto/response"
)

func strPtr(s string) *string { return &s }

var sampleJobs = []response.JobResponse{
	{ID: "1", Title: "Deep House Cleaning", Category: "Cleaning", Location: "Sector 12, Navi Mumbai", ServiceType: "short-term"},
	{ID: "2", Title: "Fan Repair & Switch Fixing", Category: "Electrician", Location: "Vashi, Navi Mumbai", ServiceType: "short-term",
		Description: strPtr("Ceiling fan making noise")},
	{ID: "3", Title: "Full-Time Cook", Category: "Cooking", Location: "Belapur, Mumbai", ServiceType: "long-term"},
}

func ids(jobs []response.JobResponse) []string {
	out := make([]string, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, j.ID)
	}
	return out
}

func TestJobs(t *testing.T) {
	tests := []struct {
		name   string
		filter JobFilter
		want   []string
	}{
		{"zero filter keeps all", JobFilter{}, []string{"1", "2", "3"}},
		{"category all", JobFilter{Category: "All"}, []string{"1", "2", "3"}},
		{"category exact case-insensitive", JobFilter{Category: "cleaning"}, []string{"1"}},
		{"category is not a substring match", JobFilter{Category: "Clean"}, []string{}},
		{"location substring", JobFilter{Location: "navi"}, []string{"1", "2"}},
		{"service type", JobFilter{ServiceType: "LONG-TERM"}, []string{"3"}},
		{"query hits description", JobFilter{Query: "ceiling"}, []string{"2"}},
		{"query hits title", JobFilter{Query: "cook"}, []string{"3"}},
		{"criteria combine", JobFilter{Location: "mumbai", ServiceType: "short-term", Query: "fan"}, []string{"2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Jobs(sampleJobs, tt.filter)
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestJobFilter_IsZero(t *testing.T) {
	assert.True(t, JobFilter{}.IsZero())
	assert.False(t, JobFilter{Query: "x"}.IsZero())
}

func TestWorkers(t *testing.T) {
	workers := []response.UserResponse{
		{ID: "a", Name: "Savita Devi", Profession: strPtr("Cleaner")},
		{ID: "b", Name: "Riya Patel", Profession: strPtr("Electrician")},
		{ID: "c", Name: "No Profession"},
	}

	assert.Len(t, Workers(workers, ""), 3)
	assert.Len(t, Workers(workers, "  "), 3)

	got := Workers(workers, "ELECTRIC")
	assert.Len(t, got, 1)
	assert.Equal(t, "b", got[0].ID)

	got = Workers(workers, "savita")
	assert.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)

	assert.Empty(t, Workers(workers, "plumber"))
}
