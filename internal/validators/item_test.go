package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmiranda/quest-keeper/models"
)

func TestItemValidator_UnsupportedType(t *testing.T) {
	v := NewItemValidator()

	err := v.Validate(context.Background(), "not an item")

	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestItemValidator_UnknownField(t *testing.T) {
	v := NewItemValidator()

	err := v.Validate(context.Background(), models.Item{Name: "x", CampaignID: "c-1"}, "hit_points")

	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestItemValidator_DefaultFields(t *testing.T) {
	v := NewItemValidator()

	// with no field scoping only the shared fields are checked
	err := v.Validate(context.Background(), models.Item{CampaignID: "c-1"})
	assert.ErrorIs(t, err, ErrNameRequired)

	err = v.Validate(context.Background(), &models.Item{Name: "Taverna"})
	assert.ErrorIs(t, err, ErrCampaignRequired)
}

func TestItemValidator_EnumFields(t *testing.T) {
	v := NewItemValidator()

	tests := []struct {
		name    string
		item    models.Item
		fields  []string
		wantErr error
	}{
		{
			name:    "bad character status",
			item:    models.Item{Name: "Kael", CampaignID: "c-1", Status: "Dormindo"},
			fields:  []string{FieldStatus},
			wantErr: ErrInvalidStatus,
		},
		{
			name:    "bad character type",
			item:    models.Item{Name: "Kael", CampaignID: "c-1", CharacterType: "Chefão"},
			fields:  []string{FieldCharacterType},
			wantErr: ErrInvalidCharacterType,
		},
		{
			name:    "bad info category",
			item:    models.Item{Name: "Nota", CampaignID: "c-1", Category: "Receita"},
			fields:  []string{FieldCategory},
			wantErr: ErrInvalidCategory,
		},
		{
			name:    "bad monster difficulty",
			item:    models.Item{Name: "Goblin", CampaignID: "c-1", Difficulty: "Impossível"},
			fields:  []string{FieldDifficulty},
			wantErr: ErrInvalidDifficulty,
		},
		{
			name:    "location parenting itself",
			item:    models.Item{ID: "loc-1", Name: "Taverna", CampaignID: "c-1", ParentID: "loc-1"},
			fields:  []string{FieldParent},
			wantErr: ErrSelfParent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.item, tt.fields...)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestItemValidator_EmptyEnumFieldsAllowed(t *testing.T) {
	v := NewItemValidator()

	fields, ok := FieldsForKind(models.KindCharacter)
	require.True(t, ok)

	err := v.Validate(context.Background(), models.Item{Name: "Kael", CampaignID: "c-1"}, fields...)

	assert.NoError(t, err)
}

func TestFieldsForKind(t *testing.T) {
	for _, kind := range models.ItemKinds {
		fields, ok := FieldsForKind(kind)
		require.True(t, ok, "kind %s must be known", kind)
		assert.Contains(t, fields, FieldName)
		assert.Contains(t, fields, FieldCampaign)
	}

	_, ok := FieldsForKind(models.ItemKind("spells"))
	assert.False(t, ok)
}
