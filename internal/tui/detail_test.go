package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lmiranda/quest-keeper/models"
)

func epochAt(t time.Time) models.EpochTime {
	return models.EpochTime(t)
}

func TestDetailModel_VisibleItems_SortsNewestFirst(t *testing.T) {
	now := time.Now()
	m := newDetailModel(models.Campaign{ID: "c1"}, models.RoleMaster)
	m.items[models.KindCharacter] = []models.Item{
		{ID: "old", Name: "Velho", CreatedAt: epochAt(now.Add(-time.Hour))},
		{ID: "new", Name: "Novo", CreatedAt: epochAt(now)},
	}

	items := m.visibleItems()

	assert.Len(t, items, 2)
	assert.Equal(t, "new", items[0].ID)
	assert.Equal(t, "old", items[1].ID)
}

func TestDetailModel_VisibleItems_SearchMatchesNameAndDescription(t *testing.T) {
	m := newDetailModel(models.Campaign{ID: "c1"}, models.RoleMaster)
	m.items[models.KindCharacter] = []models.Item{
		{ID: "a", Name: "Thalia", Description: "arqueira do norte"},
		{ID: "b", Name: "Borin", Description: "ferreiro anão"},
	}

	m.search.SetValue("ARQUEIRA")
	items := m.visibleItems()

	assert.Len(t, items, 1)
	assert.Equal(t, "a", items[0].ID)
}

func TestDetailModel_VisibleItems_EnumFilter(t *testing.T) {
	m := newDetailModel(models.Campaign{ID: "c1"}, models.RoleMaster)
	m.tab = 4 // monstros
	m.items[models.KindMonster] = []models.Item{
		{ID: "a", Name: "Goblin", Difficulty: "Fácil"},
		{ID: "b", Name: "Dragão", Difficulty: "Lendário"},
	}

	options := m.filterOptions()
	for i, option := range options {
		if option == "Lendário" {
			m.filterIdx = i
		}
	}

	items := m.visibleItems()

	assert.Len(t, items, 1)
	assert.Equal(t, "b", items[0].ID)
}

func TestDetailModel_FilterOptions_OnlyForFilterableKinds(t *testing.T) {
	m := newDetailModel(models.Campaign{ID: "c1"}, models.RolePlayer)

	m.tab = 0 // personagens
	assert.NotEmpty(t, m.filterOptions())

	m.tab = 1 // locais
	assert.Equal(t, []string{"Todos", "Locais Principais"}, m.filterOptions())

	m.tab = 2 // histórias
	assert.Empty(t, m.filterOptions())

	m.tab = membersTab
	assert.Empty(t, m.filterOptions())
}

func TestDetailModel_LocationFilterOptions_ListParents(t *testing.T) {
	m := newDetailModel(models.Campaign{ID: "c1"}, models.RoleMaster)
	m.tab = 1 // locais
	m.items[models.KindLocation] = []models.Item{
		{ID: "l1", Name: "Barovia"},
		{ID: "l2", Name: "Vallaki"},
		{ID: "l3", Name: "Taverna do Javali", ParentID: "l1"},
		{ID: "l4", Name: "Igreja", ParentID: "l1"},
	}

	// Vallaki has no sublocations and is not offered as a parent filter
	assert.Equal(t, []string{"Todos", "Locais Principais", "Barovia"}, m.filterOptions())
}

func TestDetailModel_LocationFilter_ByParent(t *testing.T) {
	m := newDetailModel(models.Campaign{ID: "c1"}, models.RoleMaster)
	m.tab = 1 // locais
	m.items[models.KindLocation] = []models.Item{
		{ID: "l1", Name: "Barovia"},
		{ID: "l2", Name: "Taverna do Javali", ParentID: "l1"},
		{ID: "l3", Name: "Vallaki"},
	}

	options := m.filterOptions()
	for i, option := range options {
		if option == "Barovia" {
			m.filterIdx = i
		}
	}

	items := m.visibleItems()

	assert.Len(t, items, 1)
	assert.Equal(t, "l2", items[0].ID)
}

func TestDetailModel_LocationFilter_TopLevelIncludesOrphans(t *testing.T) {
	m := newDetailModel(models.Campaign{ID: "c1"}, models.RoleMaster)
	m.tab = 1 // locais
	m.items[models.KindLocation] = []models.Item{
		{ID: "l1", Name: "Barovia"},
		{ID: "l2", Name: "Taverna do Javali", ParentID: "l1"},
		{ID: "l3", Name: "Cripta", ParentID: "loc-removido"},
	}

	m.filterIdx = 1 // Locais Principais

	items := m.visibleItems()

	assert.Len(t, items, 2)
	ids := []string{items[0].ID, items[1].ID}
	assert.Contains(t, ids, "l1")
	assert.Contains(t, ids, "l3")
}

func TestDetailModel_RenderItems_MarksSublocations(t *testing.T) {
	m := newDetailModel(models.Campaign{ID: "c1"}, models.RoleMaster)
	m.tab = 1 // locais
	m.loading = false
	m.items[models.KindLocation] = []models.Item{
		{ID: "l1", Name: "Barovia"},
		{ID: "l2", Name: "Taverna do Javali", ParentID: "l1"},
		{ID: "l3", Name: "Cripta", ParentID: "loc-removido"},
	}

	out := m.renderItems()

	assert.Contains(t, out, "Sublocal de Barovia")
	// an unresolvable parent gets no marker
	assert.NotContains(t, out, "Sublocal de loc-removido")
}

func TestMemberName_Fallbacks(t *testing.T) {
	profile := func(name, email string) *models.Profile {
		return &models.Profile{Name: name, Email: email}
	}

	assert.Equal(t, "Lia", memberName(models.Membership{UserID: "u1", Profile: profile("Lia", "lia@mesa.com")}))
	assert.Equal(t, "lia", memberName(models.Membership{UserID: "u1", Profile: profile("", "lia@mesa.com")}))
	assert.Equal(t, "u1", memberName(models.Membership{UserID: "u1", Profile: profile("", "")}))
	assert.Equal(t, "u1", memberName(models.Membership{UserID: "u1"}))
}

func TestDashboardModel_EntriesAndRoles(t *testing.T) {
	m := newDashboardModel()
	m.list = models.CampaignList{
		Master: []models.Campaign{{ID: "m1"}},
		Player: []models.Campaign{{ID: "p1"}, {ID: "p2"}},
	}

	entries := m.entries()
	assert.Len(t, entries, 3)
	assert.Equal(t, "m1", entries[0].ID)

	assert.True(t, m.isMasterAt(0))
	assert.False(t, m.isMasterAt(1))
	assert.False(t, m.isMasterAt(2))
}

func TestCampaignFormModel_PatchCarriesAllFields(t *testing.T) {
	campaign := models.Campaign{
		ID:          "c1",
		Name:        "A Maldição",
		Description: "cidade amaldiçoada",
		Status:      models.StatusActive,
	}
	m := newCampaignFormModel(&campaign)
	m.inputs[1].SetValue("") // limpa a descrição
	m.statusIdx = 1          // Pausada

	patch := m.patch()

	assert.Equal(t, "A Maldição", *patch.Name)
	assert.Equal(t, "", *patch.Description)
	assert.Equal(t, models.StatusPaused, *patch.Status)
}

func TestItemFormModel_ToItem_KindFields(t *testing.T) {
	m := newItemFormModel(models.KindCharacter, nil, nil)
	m.name.SetValue("Thalia")
	m.statusIdx = indexOf(statusOptions, models.CharacterAlive)
	m.typeIdx = indexOf(typeOptions, "Aliado")
	m.visible = true

	item := m.toItem()

	assert.Equal(t, "Thalia", item.Name)
	assert.Equal(t, models.CharacterAlive, item.Status)
	assert.Equal(t, "Aliado", item.CharacterType)
	assert.True(t, item.IsVisibleToPlayers)
	assert.Empty(t, item.Difficulty)
	assert.Empty(t, item.ID)
}

func TestItemFormModel_ToItem_EditingPreservesIdentity(t *testing.T) {
	original := models.Item{
		ID:         "i1",
		CampaignID: "c1",
		Name:       "Caverna",
		CreatedAt:  epochAt(time.Now()),
	}
	m := newItemFormModel(models.KindLocation, &original, []models.Item{
		original,
		{ID: "i2", Name: "Floresta"},
	})
	m.parentIdx = 1 // primeiro candidato: a própria caverna é excluída

	item := m.toItem()

	assert.Equal(t, "i1", item.ID)
	assert.Equal(t, "c1", item.CampaignID)
	assert.Equal(t, original.CreatedAt, item.CreatedAt)
	assert.Equal(t, "i2", item.ParentID)
}

func TestFitText_TruncatesRuneSafe(t *testing.T) {
	assert.Equal(t, "curto", fitText("curto", 10))
	assert.Equal(t, "Informaç...", fitText("Informações da mesa", 11))
}
