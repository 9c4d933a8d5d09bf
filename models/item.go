package models

import "fmt"

// ItemKind identifies one of the five campaign item collections. Its value
// is also the name of the backing database table.
type ItemKind string

const (
	KindCharacter ItemKind = "characters"
	KindLocation  ItemKind = "locations"
	KindStory     ItemKind = "stories"
	KindInfo      ItemKind = "infos"
	KindMonster   ItemKind = "monsters"
)

// ItemKinds lists every item kind in presentation order.
var ItemKinds = []ItemKind{
	KindCharacter, KindLocation, KindStory, KindInfo, KindMonster,
}

// Valid reports whether the kind is one of the five known collections.
func (k ItemKind) Valid() bool {
	switch k {
	case KindCharacter, KindLocation, KindStory, KindInfo, KindMonster:
		return true
	}
	return false
}

// TableName returns the database table backing the kind.
func (k ItemKind) TableName() string {
	return string(k)
}

// Character status values.
const (
	CharacterAlive   = "Alive"
	CharacterDead    = "Dead"
	CharacterUnknown = "Unknown"
	CharacterMissing = "Missing"
)

// CharacterStatuses lists the allowed values of Item.Status for characters.
var CharacterStatuses = []string{
	CharacterAlive, CharacterDead, CharacterUnknown, CharacterMissing,
}

// CharacterTypes lists the allowed values of Item.CharacterType.
var CharacterTypes = []string{"Aliado", "NPC", "Neutro", "Inimigo"}

// InfoCategories lists the allowed values of Item.Category for info entries.
var InfoCategories = []string{
	"Regra", "História/Lore", "Mapa", "Símbolo", "Aviso", "Segredo", "Outro",
}

// MonsterDifficulties lists the allowed values of Item.Difficulty.
var MonsterDifficulties = []string{"Fácil", "Médio", "Difícil", "Lendário"}

// Item is a single campaign narrative record of any kind. The common fields
// apply to every kind; the tail fields are populated only for the kind they
// belong to and are ignored elsewhere.
//
// Items are created and edited only by a MASTER member of the owning
// campaign. Any member may read them, but non-MASTER reads are filtered by
// IsVisibleToPlayers.
type Item struct {
	// ID is the opaque unique identifier assigned by the persistence layer
	// on first insert. An item carrying a non-empty ID is saved as an
	// upsert keyed by it.
	ID string `json:"id,omitempty"`

	// CampaignID is the owning campaign. Ownership is by foreign key; items
	// are destroyed with the campaign by a database-level cascade.
	CampaignID string `json:"campaignId"`

	// Name of the record. Required for every kind.
	Name string `json:"name"`

	// Description is the main narrative text.
	Description string `json:"description"`

	// ImageURL is an optional illustration. When empty, [Item.Illustration]
	// derives a deterministic placeholder from the ID.
	ImageURL string `json:"imageUrl,omitempty"`

	// IsVisibleToPlayers gates whether non-MASTER members can see the item.
	IsVisibleToPlayers bool `json:"isVisibleToPlayers"`

	// CreatedAt is the creation timestamp, serialized as epoch milliseconds.
	CreatedAt EpochTime `json:"createdAt"`

	// Status is the character life status, one of [CharacterStatuses].
	// Characters only.
	Status string `json:"status,omitempty"`

	// CharacterType is one of [CharacterTypes]. Characters only.
	CharacterType string `json:"characterType,omitempty"`

	// History is an optional long-form character backstory. Characters only.
	History string `json:"history,omitempty"`

	// ParentID optionally references another location in the same campaign,
	// making this a sub-location. Locations only.
	ParentID string `json:"parentId,omitempty"`

	// Category is one of [InfoCategories]. Info entries only.
	Category string `json:"category,omitempty"`

	// Difficulty is one of [MonsterDifficulties]. Monsters only.
	Difficulty string `json:"difficulty,omitempty"`
}

// Illustration returns the image URL to render for the item: the explicit
// ImageURL when set, otherwise a deterministic placeholder seeded by the
// item id.
func (i Item) Illustration() string {
	if i.ImageURL != "" {
		return i.ImageURL
	}
	return fmt.Sprintf("https://picsum.photos/seed/%s/600/450", i.ID)
}
