package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrNameRequired         = errors.New("item name is required")
	ErrCampaignRequired     = errors.New("item campaign is required")
	ErrInvalidStatus        = errors.New("invalid character status")
	ErrInvalidCharacterType = errors.New("invalid character type")
	ErrInvalidCategory      = errors.New("invalid info category")
	ErrInvalidDifficulty    = errors.New("invalid monster difficulty")
	ErrSelfParent           = errors.New("location cannot be its own parent")
)
