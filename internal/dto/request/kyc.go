package request

// KYCRequest is deliberately unvalidated: the liveness stub succeeds for any input.
type KYCRequest struct {
	UserID        string   `json:"userId"`
	LivenessScore *float64 `json:"livenessScore,omitempty"`
}
