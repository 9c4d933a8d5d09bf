package service

import (
	"context"
	"errors"

	"github.com/lmiranda/quest-keeper/internal/validators"
	"github.com/lmiranda/quest-keeper/models"
)

// validateItem rejects items that would violate the kind's field rules
// before any storage round-trip. The field rules themselves live in the
// validators package; this wrapper picks the field set for the kind and
// translates validator errors into the service's error surface.
func (s *itemService) validateItem(ctx context.Context, kind models.ItemKind, item models.Item) error {
	fields, ok := validators.FieldsForKind(kind)
	if !ok {
		return ErrValidationUnknownKind
	}

	if err := s.validator.Validate(ctx, item, fields...); err != nil {
		if errors.Is(err, validators.ErrCampaignRequired) {
			return ErrInvalidDataProvided
		}
		return err
	}

	return nil
}
