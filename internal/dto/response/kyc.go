package response

type KYCResponse struct {
	Success bool    `json:"success"`
	User    KYCUser `json:"user"`
}

type KYCUser struct {
	ID         string  `json:"id,omitempty"`
	IsVerified bool    `json:"isVerified"`
	TrustScore float64 `json:"trustScore,omitempty"`
}
