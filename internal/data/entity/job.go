package entity

import "github.com/google/uuid"

type PayUnit string

const (
	PayUnitHour  PayUnit = "hour"
	PayUnitDay   PayUnit = "day"
	PayUnitMonth PayUnit = "month"
	PayUnitTask  PayUnit = "task"
)

type ServiceType string

const (
	ServiceTypeShortTerm ServiceType = "short-term"
	ServiceTypeLongTerm  ServiceType = "long-term"
)

type JobStatus string

const (
	JobStatusOpen      JobStatus = "open"
	JobStatusAccepted  JobStatus = "accepted"
	JobStatusCompleted JobStatus = "completed"
)

// CanTransitionTo reports whether status may move to next.
// The only path is open -> accepted -> completed.
func (s JobStatus) CanTransitionTo(next JobStatus) bool {
	switch s {
	case JobStatusOpen:
		return next == JobStatusAccepted
	case JobStatusAccepted:
		return next == JobStatusCompleted
	default:
		return false
	}
}

type Job struct {
	Base
	Title          string      `db:"title"`
	Location       string      `db:"location"`
	Category       string      `db:"category"`
	Description    *string     `db:"description"`
	Pay            float64     `db:"pay"`
	Unit           PayUnit     `db:"unit"`
	ServiceType    ServiceType `db:"service_type"`
	Duration       string      `db:"duration"`
	Status         JobStatus   `db:"status"`
	SafetyVerified bool        `db:"safety_verified"`
	PostedBy       uuid.UUID   `db:"posted_by"`
	AcceptedBy     *uuid.UUID  `db:"accepted_by"`
}
