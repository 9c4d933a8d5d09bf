package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"

	"github.com/lmiranda/quest-keeper/models"
)

type dashboardModel struct {
	list       models.CampaignList
	idx        int
	loading    bool
	refreshing bool
	spinner    spinner.Model
	status     string
}

func newDashboardModel() dashboardModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return dashboardModel{spinner: s, loading: true}
}

// entries flattens the partitioned list into one navigable slice: mastered
// campaigns first, then joined ones, newest first within each section.
func (m dashboardModel) entries() []models.Campaign {
	out := make([]models.Campaign, 0, len(m.list.Master)+len(m.list.Player))
	out = append(out, m.list.Master...)
	out = append(out, m.list.Player...)
	return out
}

func (m dashboardModel) current() (models.Campaign, bool) {
	entries := m.entries()
	if len(entries) == 0 || m.idx < 0 || m.idx >= len(entries) {
		return models.Campaign{}, false
	}
	return entries[m.idx], true
}

// isMasterAt reports whether the entry at the flattened index belongs to the
// mastered section.
func (m dashboardModel) isMasterAt(idx int) bool {
	return idx < len(m.list.Master)
}

func (m *dashboardModel) clampIdx() {
	total := len(m.list.Master) + len(m.list.Player)
	if m.idx >= total {
		m.idx = total - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m dashboardModel) View() string {
	var b strings.Builder

	if m.loading {
		return renderPage("MINHAS MESAS", "Carregando...", "")
	}

	header := ""
	if m.refreshing {
		header = m.spinner.View() + " atualizando..."
	}
	if header != "" {
		b.WriteString(header + "\n\n")
	}

	if len(m.list.Master) == 0 && len(m.list.Player) == 0 {
		b.WriteString("Nenhuma campanha ainda.\n")
		b.WriteString("Crie uma mesa nova ou entre com um código de convite.\n")
	}

	if len(m.list.Master) > 0 {
		b.WriteString(sectionStyle.Render("Mestrando") + "\n")
		for i, c := range m.list.Master {
			b.WriteString(m.renderRow(c, i == m.idx))
		}
		b.WriteString("\n")
	}

	if len(m.list.Player) > 0 {
		b.WriteString(sectionStyle.Render("Participando") + "\n")
		for i, c := range m.list.Player {
			b.WriteString(m.renderRow(c, len(m.list.Master)+i == m.idx))
		}
	}

	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}

	return renderPage(
		"MINHAS MESAS",
		strings.TrimRight(b.String(), "\n"),
		"n: nova │ j: código │ enter: abrir │ e: editar │ ctrl+d: excluir │ p: perfil │ r: atualizar │ l: sair da conta",
	)
}

func (m dashboardModel) renderRow(c models.Campaign, selected bool) string {
	cursor := "  "
	if selected {
		cursor = "> "
	}
	return fmt.Sprintf("%s%-28s %s %s\n",
		cursor,
		fitText(c.Name, 28),
		statusBadge(c.Status),
		helpStyle.Render(fitText(c.Description, 30)),
	)
}
