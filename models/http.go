package models

// Request and response bodies exchanged between the client adapter and the
// HTTP API. Field naming follows the camelCase domain convention; the
// snake_case translation happens only at the persistence layer.

// SignUpRequest creates a new account.
type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// SignInRequest authenticates an existing account.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProfileUpdateRequest carries the editable identity fields.
type ProfileUpdateRequest struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// CreateCampaignRequest creates a campaign owned by the authenticated user.
type CreateCampaignRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// JoinCampaignRequest joins the authenticated user to the campaign matching
// the invite code. The lookup is case-insensitive.
type JoinCampaignRequest struct {
	InviteCode string `json:"inviteCode"`
}

// JoinCampaignResponse returns the id of the joined campaign so the caller
// can navigate into it.
type JoinCampaignResponse struct {
	CampaignID string `json:"campaignId"`
}

// MembershipCountResponse reports how many members a campaign has.
type MembershipCountResponse struct {
	Count int `json:"count"`
}

// ErrorResponse is the JSON body of every non-2xx API response.
type ErrorResponse struct {
	Error string `json:"error"`
}
