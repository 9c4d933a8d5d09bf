package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/lmiranda/quest-keeper/models"
)

var campaignStatuses = []string{models.StatusActive, models.StatusPaused, models.StatusFinished}

type campaignFormModel struct {
	inputs     []textinput.Model
	focus      int
	statusIdx  int
	editing    bool
	campaignID string
	submitting bool
}

// newCampaignFormModel builds the create/edit form. When campaign is nil the
// form starts blank and saves as a create; otherwise it is pre-filled and
// saves as a sparse patch.
func newCampaignFormModel(campaign *models.Campaign) campaignFormModel {
	name := textinput.New()
	name.Placeholder = "nome da mesa"
	name.Width = 40
	name.Focus()

	description := textinput.New()
	description.Placeholder = "descrição (opcional)"
	description.Width = 40

	imageURL := textinput.New()
	imageURL.Placeholder = "URL da imagem (opcional)"
	imageURL.Width = 40

	m := campaignFormModel{inputs: []textinput.Model{name, description, imageURL}}

	if campaign != nil {
		m.editing = true
		m.campaignID = campaign.ID
		m.inputs[0].SetValue(campaign.Name)
		m.inputs[1].SetValue(campaign.Description)
		m.inputs[2].SetValue(campaign.ImageURL)
		for i, s := range campaignStatuses {
			if s == campaign.Status {
				m.statusIdx = i
			}
		}
	}

	return m
}

func (m campaignFormModel) status() string {
	return campaignStatuses[m.statusIdx]
}

// patch assembles the sparse update for an edit save. Description and image
// URL are always present so the form can clear them; name and status follow
// the skip-when-empty rule.
func (m campaignFormModel) patch() models.CampaignPatch {
	name := strings.TrimSpace(m.inputs[0].Value())
	description := strings.TrimSpace(m.inputs[1].Value())
	imageURL := strings.TrimSpace(m.inputs[2].Value())
	status := m.status()

	return models.CampaignPatch{
		Name:        &name,
		Description: &description,
		ImageURL:    &imageURL,
		Status:      &status,
	}
}

func (m campaignFormModel) View() string {
	var b strings.Builder
	b.WriteString("Campo      │ Valor\n")
	b.WriteString("───────────┼────────────────────────────────────────\n")
	b.WriteString("Nome       │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Descrição  │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")
	b.WriteString("Imagem     │ [")
	b.WriteString(m.inputs[2].View())
	b.WriteString("]\n")

	if m.editing {
		b.WriteString("Status     │ ← " + m.status() + " →\n")
	}

	if m.submitting {
		b.WriteString("\n[Salvando...]\n")
	} else {
		b.WriteString("\n[Salvar]\n")
	}

	title := "NOVA MESA"
	hotKeys := "esc: voltar │ tab: próximo campo │ enter: salvar"
	if m.editing {
		title = "EDITAR MESA"
		hotKeys = "esc: voltar │ tab: próximo campo │ ←/→: status │ enter: salvar"
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"), hotKeys)
}
