package response

import (
	"time"

	"clicksafe/internal/data/entity"
)

// UserResponse is the sanitized account view. The password hash never
// crosses this boundary.
type UserResponse struct {
	ID                 string     `json:"id"`
	Email              string     `json:"email"`
	CompanyName        string     `json:"companyName"`
	CompanyDescription string     `json:"companyDescription"`
	CreatedAt          *time.Time `json:"createdAt,omitempty"`
}

// AuthResult carries a freshly minted token together with its account view.
type AuthResult struct {
	Token string
	User  UserResponse
}

// ------------- HTTP envelopes -------------

type MessageEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	// OTP is echoed only in debug mode, mirroring the dev-only behavior of
	// the send endpoints.
	OTP string `json:"otp,omitempty"`
}

type AuthEnvelope struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

type ProfileEnvelope struct {
	Success bool         `json:"success"`
	User    UserResponse `json:"user"`
}

type HealthEnvelope struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// AccountToResponse converts an account entity to its sanitized view.
// CreatedAt is included only for profile reads.
func AccountToResponse(account *entity.Account, withCreatedAt bool) UserResponse {
	resp := UserResponse{
		ID:                 account.ID.String(),
		Email:              account.Email,
		CompanyName:        account.CompanyName,
		CompanyDescription: account.CompanyDescription,
	}

	if withCreatedAt {
		createdAt := account.CreatedAt
		resp.CreatedAt = &createdAt
	}

	return resp
}
