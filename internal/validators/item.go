package validators

import (
	"context"

	"github.com/lmiranda/quest-keeper/models"
)

// Field name constants used to specify which fields should be validated.
// They are passed to Validate to restrict validation to a subset of fields
// (field-level scoping), typically via [FieldsForKind].
const (
	// FieldName targets the item's display name.
	FieldName = "name"

	// FieldCampaign targets the owning campaign identifier.
	FieldCampaign = "campaign_id"

	// FieldStatus targets a character's life status enum.
	FieldStatus = "status"

	// FieldCharacterType targets a character's allegiance enum.
	FieldCharacterType = "character_type"

	// FieldParent targets a location's parent reference.
	FieldParent = "parent_id"

	// FieldCategory targets an info's category enum.
	FieldCategory = "category"

	// FieldDifficulty targets a monster's difficulty enum.
	FieldDifficulty = "difficulty"
)

// FieldsForKind returns the field set Validate should check for items of the
// given kind, and false when the kind is not one of the five known kinds.
func FieldsForKind(kind models.ItemKind) ([]string, bool) {
	base := []string{FieldName, FieldCampaign}

	switch kind {
	case models.KindCharacter:
		return append(base, FieldStatus, FieldCharacterType), true
	case models.KindLocation:
		return append(base, FieldParent), true
	case models.KindStory:
		return base, true
	case models.KindInfo:
		return append(base, FieldCategory), true
	case models.KindMonster:
		return append(base, FieldDifficulty), true
	}

	return nil, false
}

// ItemValidator enforces the per-kind field rules of campaign items. Empty
// enum fields are accepted — the database fills their defaults — but a
// non-empty value must be a member of the kind's enum.
type ItemValidator struct {
}

func NewItemValidator() Validator {
	return &ItemValidator{}
}

func (v *ItemValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Item:
		return v.validateItem(ctx, value, fields...)
	case *models.Item:
		return v.validateItem(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ItemValidator) validateItem(_ context.Context, item models.Item, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldCampaign}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if item.Name == "" {
				return ErrNameRequired
			}
		case FieldCampaign:
			if item.CampaignID == "" {
				return ErrCampaignRequired
			}
		case FieldStatus:
			if item.Status != "" && !isEnumMember(models.CharacterStatuses, item.Status) {
				return ErrInvalidStatus
			}
		case FieldCharacterType:
			if item.CharacterType != "" && !isEnumMember(models.CharacterTypes, item.CharacterType) {
				return ErrInvalidCharacterType
			}
		case FieldParent:
			if item.ParentID != "" && item.ParentID == item.ID {
				return ErrSelfParent
			}
		case FieldCategory:
			if item.Category != "" && !isEnumMember(models.InfoCategories, item.Category) {
				return ErrInvalidCategory
			}
		case FieldDifficulty:
			if item.Difficulty != "" && !isEnumMember(models.MonsterDifficulties, item.Difficulty) {
				return ErrInvalidDifficulty
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isEnumMember(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
