package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lmiranda/quest-keeper/models"
)

// Form field identifiers. The per-kind field order decides which of them a
// form actually shows.
type formField int

const (
	fName formField = iota
	fDescription
	fImage
	fStatus
	fType
	fHistory
	fParent
	fCategory
	fDifficulty
	fVisible
)

type itemFormModel struct {
	kind       models.ItemKind
	editing    bool
	original   models.Item
	submitting bool

	fields []formField
	focus  int

	name        textinput.Model
	description textarea.Model
	imageURL    textinput.Model
	history     textarea.Model

	visible bool

	statusIdx     int
	typeIdx       int
	categoryIdx   int
	difficultyIdx int

	// parentOptions holds the campaign's other locations; index 0 means no
	// parent.
	parentOptions []models.Item
	parentIdx     int
}

// Enum rows allow the empty value: not every character has a known status
// and not every info entry is categorized.
var (
	statusOptions     = append([]string{""}, models.CharacterStatuses...)
	typeOptions       = append([]string{""}, models.CharacterTypes...)
	categoryOptions   = append([]string{""}, models.InfoCategories...)
	difficultyOptions = append([]string{""}, models.MonsterDifficulties...)
)

func fieldOrder(kind models.ItemKind) []formField {
	switch kind {
	case models.KindCharacter:
		return []formField{fName, fDescription, fImage, fStatus, fType, fHistory, fVisible}
	case models.KindLocation:
		return []formField{fName, fDescription, fImage, fParent, fVisible}
	case models.KindInfo:
		return []formField{fName, fDescription, fImage, fCategory, fVisible}
	case models.KindMonster:
		return []formField{fName, fDescription, fImage, fDifficulty, fVisible}
	default:
		return []formField{fName, fDescription, fImage, fVisible}
	}
}

// newItemFormModel builds the create/edit form for one item kind. When item
// is nil the form starts blank. siblings supplies the campaign's locations
// for the parent picker; the edited item itself is excluded so it can never
// become its own parent.
func newItemFormModel(kind models.ItemKind, item *models.Item, siblings []models.Item) itemFormModel {
	name := textinput.New()
	name.Placeholder = "nome"
	name.Width = 40
	name.Focus()

	description := textarea.New()
	description.Placeholder = "descrição"
	description.SetWidth(54)
	description.SetHeight(4)

	imageURL := textinput.New()
	imageURL.Placeholder = "URL da imagem (opcional)"
	imageURL.Width = 40

	history := textarea.New()
	history.Placeholder = "história do personagem (opcional)"
	history.SetWidth(54)
	history.SetHeight(4)

	m := itemFormModel{
		kind:        kind,
		fields:      fieldOrder(kind),
		name:        name,
		description: description,
		imageURL:    imageURL,
		history:     history,
	}

	if kind == models.KindLocation {
		for _, sibling := range siblings {
			if item != nil && sibling.ID == item.ID {
				continue
			}
			m.parentOptions = append(m.parentOptions, sibling)
		}
	}

	if item != nil {
		m.editing = true
		m.original = *item
		m.name.SetValue(item.Name)
		m.description.SetValue(item.Description)
		m.imageURL.SetValue(item.ImageURL)
		m.history.SetValue(item.History)
		m.visible = item.IsVisibleToPlayers
		m.statusIdx = indexOf(statusOptions, item.Status)
		m.typeIdx = indexOf(typeOptions, item.CharacterType)
		m.categoryIdx = indexOf(categoryOptions, item.Category)
		m.difficultyIdx = indexOf(difficultyOptions, item.Difficulty)
		for i, option := range m.parentOptions {
			if option.ID == item.ParentID {
				m.parentIdx = i + 1
			}
		}
	}

	return m
}

func indexOf(options []string, value string) int {
	for i, option := range options {
		if option == value {
			return i
		}
	}
	return 0
}

func (m itemFormModel) currentField() formField {
	return m.fields[m.focus]
}

// toItem assembles the item to save. Editing preserves the identity fields
// of the original record; only kind-relevant tail fields are populated.
func (m itemFormModel) toItem() models.Item {
	item := models.Item{
		Name:               strings.TrimSpace(m.name.Value()),
		Description:        strings.TrimSpace(m.description.Value()),
		ImageURL:           strings.TrimSpace(m.imageURL.Value()),
		IsVisibleToPlayers: m.visible,
	}

	if m.editing {
		item.ID = m.original.ID
		item.CampaignID = m.original.CampaignID
		item.CreatedAt = m.original.CreatedAt
	}

	switch m.kind {
	case models.KindCharacter:
		item.Status = statusOptions[m.statusIdx]
		item.CharacterType = typeOptions[m.typeIdx]
		item.History = strings.TrimSpace(m.history.Value())
	case models.KindLocation:
		if m.parentIdx > 0 && m.parentIdx <= len(m.parentOptions) {
			item.ParentID = m.parentOptions[m.parentIdx-1].ID
		}
	case models.KindInfo:
		item.Category = categoryOptions[m.categoryIdx]
	case models.KindMonster:
		item.Difficulty = difficultyOptions[m.difficultyIdx]
	}

	return item
}

func (m *itemFormModel) focusNext() {
	m.blurCurrent()
	m.focus = (m.focus + 1) % len(m.fields)
	m.focusCurrent()
}

func (m *itemFormModel) focusPrev() {
	m.blurCurrent()
	m.focus = (m.focus - 1 + len(m.fields)) % len(m.fields)
	m.focusCurrent()
}

func (m *itemFormModel) blurCurrent() {
	switch m.currentField() {
	case fName:
		m.name.Blur()
	case fDescription:
		m.description.Blur()
	case fImage:
		m.imageURL.Blur()
	case fHistory:
		m.history.Blur()
	}
}

func (m *itemFormModel) focusCurrent() {
	switch m.currentField() {
	case fName:
		m.name.Focus()
	case fDescription:
		m.description.Focus()
	case fImage:
		m.imageURL.Focus()
	case fHistory:
		m.history.Focus()
	}
}

// cycle moves the focused enum/toggle row by delta. Text fields ignore it.
func (m *itemFormModel) cycle(delta int) bool {
	switch m.currentField() {
	case fStatus:
		m.statusIdx = wrap(m.statusIdx+delta, len(statusOptions))
	case fType:
		m.typeIdx = wrap(m.typeIdx+delta, len(typeOptions))
	case fCategory:
		m.categoryIdx = wrap(m.categoryIdx+delta, len(categoryOptions))
	case fDifficulty:
		m.difficultyIdx = wrap(m.difficultyIdx+delta, len(difficultyOptions))
	case fParent:
		m.parentIdx = wrap(m.parentIdx+delta, len(m.parentOptions)+1)
	case fVisible:
		m.visible = !m.visible
	default:
		return false
	}
	return true
}

func wrap(v, n int) int {
	if n <= 0 {
		return 0
	}
	return (v%n + n) % n
}

// forwardInput sends the message to the focused text widget, if any.
func (m *itemFormModel) forwardInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.currentField() {
	case fName:
		m.name, cmd = m.name.Update(msg)
	case fDescription:
		m.description, cmd = m.description.Update(msg)
	case fImage:
		m.imageURL, cmd = m.imageURL.Update(msg)
	case fHistory:
		m.history, cmd = m.history.Update(msg)
	}
	return cmd
}

func (m itemFormModel) View() string {
	var b strings.Builder

	marker := func(f formField) string {
		if m.currentField() == f {
			return "> "
		}
		return "  "
	}
	enumValue := func(options []string, idx int) string {
		return "← " + valueOrDash(options[idx]) + " →"
	}

	for _, field := range m.fields {
		switch field {
		case fName:
			b.WriteString(marker(fName) + "Nome       [" + m.name.View() + "]\n")
		case fDescription:
			b.WriteString(marker(fDescription) + "Descrição:\n")
			b.WriteString(m.description.View() + "\n")
		case fImage:
			b.WriteString(marker(fImage) + "Imagem     [" + m.imageURL.View() + "]\n")
		case fStatus:
			b.WriteString(marker(fStatus) + "Status     " + enumValue(statusOptions, m.statusIdx) + "\n")
		case fType:
			b.WriteString(marker(fType) + "Tipo       " + enumValue(typeOptions, m.typeIdx) + "\n")
		case fHistory:
			b.WriteString(marker(fHistory) + "História:\n")
			b.WriteString(m.history.View() + "\n")
		case fParent:
			parent := "-"
			if m.parentIdx > 0 && m.parentIdx <= len(m.parentOptions) {
				parent = m.parentOptions[m.parentIdx-1].Name
			}
			b.WriteString(marker(fParent) + "Local pai  ← " + parent + " →\n")
		case fCategory:
			b.WriteString(marker(fCategory) + "Categoria  " + enumValue(categoryOptions, m.categoryIdx) + "\n")
		case fDifficulty:
			b.WriteString(marker(fDifficulty) + "Nível      " + enumValue(difficultyOptions, m.difficultyIdx) + "\n")
		case fVisible:
			b.WriteString(marker(fVisible) + "Visível para jogadores: " + yesNo(m.visible) + "\n")
		}
	}

	if m.submitting {
		b.WriteString("\n[Salvando...]\n")
	} else {
		b.WriteString("\n[ctrl+s salvar]\n")
	}

	title := "NOVO REGISTRO: " + kindLabel(string(m.kind))
	if m.editing {
		title = "EDITAR: " + kindLabel(string(m.kind))
	}

	return renderPage(
		title,
		strings.TrimRight(b.String(), "\n"),
		"tab: próximo campo │ ←/→: alternar valor │ ctrl+s: salvar │ esc: cancelar",
	)
}
