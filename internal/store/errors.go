package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known
// failure conditions. Callers should use [errors.Is] to match against these
// values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new
	// user fails because an account with the same email already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least
	// one user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrCampaignNotFound is returned when a lookup by id or invite code
	// matches no campaign.
	ErrCampaignNotFound = errors.New("campaign was not found")

	// ErrInviteCodeTaken is returned when a campaign insert collides with an
	// existing invite code. Codes are generated without a uniqueness check,
	// so the database constraint is the only defence.
	ErrInviteCodeTaken = errors.New("invite code already taken")

	// ErrAlreadyMember is returned when a membership insert violates the
	// (user, campaign) uniqueness constraint: the user already belongs to
	// the campaign.
	ErrAlreadyMember = errors.New("user is already a member of the campaign")

	// ErrMembershipNotFound is returned when a membership lookup by
	// composite key matches no row.
	ErrMembershipNotFound = errors.New("membership was not found")

	// ErrItemNotFound is returned when a campaign item targeted by id does
	// not exist.
	ErrItemNotFound = errors.New("campaign item was not found")

	// ErrProfileNotFound is returned when a profile lookup by user id
	// matches no row. Membership listings treat this as a soft absence.
	ErrProfileNotFound = errors.New("profile was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain
// logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
