package service

import (
	"errors"

	"github.com/lmiranda/quest-keeper/internal/validators"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed = errors.New("token creation failed")
	ErrTokenIsExpired      = errors.New("token is expired")

	// ErrAccessDenied is returned when the caller is not a member of the
	// targeted campaign, or attempts a master-only operation as a player.
	ErrAccessDenied = errors.New("access denied")

	ErrVersionIsNotSpecified = errors.New("application version is not specified")

	// ErrValidationUnknownKind rejects item operations naming a kind outside
	// the five known kinds; the validator itself never sees the kind.
	ErrValidationUnknownKind = errors.New("unknown item kind")

	// ErrValidationParentNotFound rejects saving a location whose parent is
	// not a location of the same campaign.
	ErrValidationParentNotFound = errors.New("parent location not found in campaign")

	// Item field rules live in the validators package; the service exposes
	// them under its own names so handlers map one error surface.
	ErrValidationNameRequired  = validators.ErrNameRequired
	ErrValidationInvalidStatus = validators.ErrInvalidStatus
	ErrValidationInvalidType   = validators.ErrInvalidCharacterType
	ErrValidationInvalidGroup  = validators.ErrInvalidCategory
	ErrValidationInvalidLevel  = validators.ErrInvalidDifficulty
	ErrValidationSelfParent    = validators.ErrSelfParent
)
