// Package app contains shared application-layer constants used across the
// quest-keeper server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidEmailPassword is returned when the supplied email/password
	// combination does not match any existing user record.
	MsgInvalidEmailPassword = "invalid email/password"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNoUserIDProvided is returned when a handler requires a user ID (e.g.
	// extracted from the JWT claim) but none is present in the request
	// context.
	MsgNoUserIDProvided = "no user ID provided"

	// MsgAccessDenied is returned when the authenticated user attempts an
	// operation reserved for the campaign master, or targets a campaign they
	// do not belong to.
	MsgAccessDenied = "access denied"

	// MsgRegistrationFailed is returned when the registration handler
	// encounters an unexpected error that prevents account creation.
	MsgRegistrationFailed = "registration failed"

	// MsgLoginFailed is returned when the login handler encounters an
	// unexpected error that prevents issuing a session token.
	MsgLoginFailed = "login failed"

	// MsgEmailAlreadyExists is returned when a registration attempt is
	// rejected because the requested email is already in use.
	MsgEmailAlreadyExists = "email already exists"

	// MsgCampaignNotFound is returned when a read, update, or delete
	// operation targets a campaign that does not exist, or a join attempt
	// uses an invite code that matches no campaign.
	MsgCampaignNotFound = "campaign not found"

	// MsgAlreadyJoined is returned when a join attempt targets a campaign
	// the user already belongs to.
	MsgAlreadyJoined = "already a member of this campaign"

	// MsgItemNotFound is returned when a read, update, or delete operation
	// targets a campaign item that does not exist.
	MsgItemNotFound = "item not found"

	// MsgMemberNotFound is returned when a member removal targets a user who
	// does not belong to the campaign.
	MsgMemberNotFound = "member not found"

	// MsgInvalidInviteCode is returned when a join request carries a
	// syntactically invalid invite code.
	MsgInvalidInviteCode = "invalid invite code"
)
