package request

type JobRequest struct {
	Title          string  `json:"title" validate:"required,max=200"`
	Location       string  `json:"location" validate:"required,max=200"`
	Category       string  `json:"category" validate:"required,max=80"`
	Description    *string `json:"description,omitempty"`
	Pay            float64 `json:"pay" validate:"gt=0"`
	Unit           string  `json:"unit" validate:"required,oneof=hour day month task"`
	ServiceType    string  `json:"serviceType" validate:"required,oneof=short-term long-term"`
	Duration       string  `json:"duration" validate:"required,max=100"`
	SafetyVerified *bool   `json:"safetyVerified,omitempty"`
}
