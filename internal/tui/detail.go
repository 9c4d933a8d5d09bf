package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/lmiranda/quest-keeper/models"
)

// membersTab is the index of the member list tab, placed after the five item
// kinds.
var membersTab = len(models.ItemKinds)

type detailModel struct {
	campaign models.Campaign
	role     models.Role

	tab     int
	idx     int
	loading bool

	items   map[models.ItemKind][]models.Item
	members []models.Membership
	pending int

	searching bool
	search    textinput.Model
	filterIdx int

	status string
}

func newDetailModel(campaign models.Campaign, role models.Role) detailModel {
	search := textinput.New()
	search.Placeholder = "buscar por nome ou descrição"
	search.Width = 40

	return detailModel{
		campaign: campaign,
		role:     role,
		loading:  true,
		items:    make(map[models.ItemKind][]models.Item),
		search:   search,
	}
}

func (m detailModel) isMaster() bool {
	return m.role == models.RoleMaster
}

func (m detailModel) currentKind() (models.ItemKind, bool) {
	if m.tab >= 0 && m.tab < len(models.ItemKinds) {
		return models.ItemKinds[m.tab], true
	}
	return "", false
}

// locationTopLevel is the locations filter bucket for locations without a
// resolvable parent.
const locationTopLevel = "Locais Principais"

// filterOptions returns the values the active tab can filter by. The first
// entry always means "no filter". Locations filter by parent instead of an
// enum field.
func (m detailModel) filterOptions() []string {
	kind, ok := m.currentKind()
	if !ok {
		return nil
	}

	switch kind {
	case models.KindCharacter:
		return append([]string{"Todos"}, models.CharacterTypes...)
	case models.KindInfo:
		return append([]string{"Todos"}, models.InfoCategories...)
	case models.KindMonster:
		return append([]string{"Todos"}, models.MonsterDifficulties...)
	case models.KindLocation:
		return m.locationFilterOptions()
	default:
		return nil
	}
}

// locationFilterOptions offers the top-level bucket plus one entry per
// location that currently parents at least one sublocation.
func (m detailModel) locationFilterOptions() []string {
	options := []string{"Todos", locationTopLevel}

	seen := make(map[string]bool)
	for _, item := range m.items[models.KindLocation] {
		if item.ParentID == "" || seen[item.ParentID] {
			continue
		}
		seen[item.ParentID] = true
		if parent, ok := m.locationByID(item.ParentID); ok {
			options = append(options, parent.Name)
		}
	}
	sort.Strings(options[2:])

	return options
}

func (m detailModel) locationByID(id string) (models.Item, bool) {
	for _, item := range m.items[models.KindLocation] {
		if item.ID == id {
			return item, true
		}
	}
	return models.Item{}, false
}

// parentOf resolves a location's parent among the fetched locations. A parent
// id pointing at a removed location resolves to nothing.
func (m detailModel) parentOf(item models.Item) (models.Item, bool) {
	if item.ParentID == "" {
		return models.Item{}, false
	}
	return m.locationByID(item.ParentID)
}

func (m detailModel) activeFilter() string {
	options := m.filterOptions()
	if len(options) == 0 || m.filterIdx <= 0 || m.filterIdx >= len(options) {
		return ""
	}
	return options[m.filterIdx]
}

// visibleItems applies search, the enum filter, and the newest-first sort to
// the active tab's fetched items.
func (m detailModel) visibleItems() []models.Item {
	kind, ok := m.currentKind()
	if !ok {
		return nil
	}

	query := strings.ToLower(strings.TrimSpace(m.search.Value()))
	filter := m.activeFilter()

	out := make([]models.Item, 0, len(m.items[kind]))
	for _, item := range m.items[kind] {
		if query != "" &&
			!strings.Contains(strings.ToLower(item.Name), query) &&
			!strings.Contains(strings.ToLower(item.Description), query) {
			continue
		}
		if filter != "" && !m.matchesFilter(item, kind, filter) {
			continue
		}
		out = append(out, item)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Time().After(out[j].CreatedAt.Time())
	})

	return out
}

func (m detailModel) matchesFilter(item models.Item, kind models.ItemKind, filter string) bool {
	switch kind {
	case models.KindCharacter:
		return item.CharacterType == filter
	case models.KindInfo:
		return item.Category == filter
	case models.KindMonster:
		return item.Difficulty == filter
	case models.KindLocation:
		parent, ok := m.parentOf(item)
		if filter == locationTopLevel {
			// orphaned sublocations show with the top-level ones
			return !ok
		}
		return ok && parent.Name == filter
	default:
		return true
	}
}

func (m detailModel) currentItem() (models.Item, bool) {
	items := m.visibleItems()
	if len(items) == 0 || m.idx < 0 || m.idx >= len(items) {
		return models.Item{}, false
	}
	return items[m.idx], true
}

func (m detailModel) currentMember() (models.Membership, bool) {
	if len(m.members) == 0 || m.idx < 0 || m.idx >= len(m.members) {
		return models.Membership{}, false
	}
	return m.members[m.idx], true
}

func (m *detailModel) clampIdx() {
	var total int
	if m.tab == membersTab {
		total = len(m.members)
	} else {
		total = len(m.visibleItems())
	}
	if m.idx >= total {
		m.idx = total - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m detailModel) View() string {
	var b strings.Builder

	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString("Carregando...\n")
		return renderPage(m.title(), strings.TrimRight(b.String(), "\n"), "esc: voltar")
	}

	if m.searching {
		b.WriteString("Busca: [" + m.search.View() + "]\n\n")
	} else if strings.TrimSpace(m.search.Value()) != "" {
		b.WriteString("Busca: " + m.search.Value() + "  " + helpStyle.Render("(/ para editar)") + "\n\n")
	}

	if m.tab == membersTab {
		b.WriteString(m.renderMembers())
	} else {
		b.WriteString(m.renderItems())
	}

	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}

	return renderPage(m.title(), strings.TrimRight(b.String(), "\n"), m.hotKeys())
}

func (m detailModel) title() string {
	return strings.ToUpper(m.campaign.Name) + "  " + statusBadge(m.campaign.Status)
}

func (m detailModel) renderTabs() string {
	labels := make([]string, 0, len(models.ItemKinds)+1)
	for i, kind := range models.ItemKinds {
		label := kindLabel(string(kind))
		if i == m.tab {
			label = titleStyle.Render("[" + label + "]")
		}
		labels = append(labels, label)
	}
	membersLabel := "Membros"
	if m.tab == membersTab {
		membersLabel = titleStyle.Render("[" + membersLabel + "]")
	}
	labels = append(labels, membersLabel)

	return strings.Join(labels, " · ")
}

func (m detailModel) renderItems() string {
	var b strings.Builder

	if filter := m.activeFilter(); filter != "" {
		b.WriteString("Filtro: " + filter + "\n\n")
	}

	items := m.visibleItems()
	if len(items) == 0 {
		b.WriteString("Nenhum registro.\n")
		return b.String()
	}

	kind, _ := m.currentKind()

	for i, item := range items {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}

		visibility := ""
		if m.isMaster() {
			if item.IsVisibleToPlayers {
				visibility = " 👁"
			} else {
				visibility = " ✕"
			}
		}

		parentMark := ""
		if kind == models.KindLocation {
			if parent, ok := m.parentOf(item); ok {
				parentMark = "  " + helpStyle.Render("Sublocal de "+parent.Name)
			}
		}

		b.WriteString(fmt.Sprintf("%s%-30s%s %s%s\n",
			cursor,
			fitText(item.Name, 30),
			visibility,
			helpStyle.Render(fitText(item.Description, 34)),
			parentMark,
		))
	}

	return b.String()
}

func (m detailModel) renderMembers() string {
	var b strings.Builder

	b.WriteString("Código de convite: " + titleStyle.Render(m.campaign.InviteCode) + "  " + helpStyle.Render("(c para copiar)") + "\n\n")

	if len(m.members) == 0 {
		b.WriteString("Nenhum membro.\n")
		return b.String()
	}

	for i, member := range m.members {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}

		name := memberName(member)
		avatar := "-"
		if member.Profile != nil && member.Profile.Avatar != "" {
			avatar = member.Profile.Avatar
		}

		b.WriteString(fmt.Sprintf("%s%-24s %-8s %s\n",
			cursor,
			fitText(name, 24),
			roleLabel(string(member.Role)),
			helpStyle.Render(avatar),
		))
	}

	return b.String()
}

// memberName picks the display name for a membership row: the mirrored
// profile name, then the local part of the profile email, then the raw user
// id.
func memberName(member models.Membership) string {
	if member.Profile == nil {
		return member.UserID
	}
	if member.Profile.Name != "" {
		return member.Profile.Name
	}
	if at := strings.IndexByte(member.Profile.Email, '@'); at > 0 {
		return member.Profile.Email[:at]
	}
	return member.UserID
}

func (m detailModel) hotKeys() string {
	if m.searching {
		return "enter/esc: concluir busca"
	}
	if m.tab == membersTab {
		if m.isMaster() {
			return "tab: próxima aba │ c: copiar convite │ ctrl+d: remover │ esc: voltar"
		}
		return "tab: próxima aba │ c: copiar convite │ esc: voltar"
	}
	if m.isMaster() {
		return "tab: aba │ n: novo │ enter/e: editar │ v: visibilidade │ ctrl+d: excluir │ /: buscar │ f: filtrar │ esc: voltar"
	}
	return "tab: próxima aba │ /: buscar │ f: filtrar │ esc: voltar"
}
