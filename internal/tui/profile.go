package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/lmiranda/quest-keeper/models"
)

type profileModel struct {
	name       textinput.Model
	avatarIdx  int
	focusName  bool
	submitting bool
}

func newProfileModel(user models.User) profileModel {
	name := textinput.New()
	name.Placeholder = "nome de exibição"
	name.Width = 40
	name.SetValue(user.Name)
	name.Focus()

	idx := 0
	for i, a := range models.Avatars {
		if a == user.Avatar {
			idx = i
		}
	}

	return profileModel{name: name, avatarIdx: idx, focusName: true}
}

func (m profileModel) avatar() string {
	return models.Avatars[m.avatarIdx]
}

func (m profileModel) View() string {
	var b strings.Builder
	b.WriteString("Nome   │ [")
	b.WriteString(m.name.View())
	b.WriteString("]\n\n")

	b.WriteString("Avatar:\n")
	// Render the avatar set as a 4-column grid.
	for i, a := range models.Avatars {
		marker := "  "
		if i == m.avatarIdx {
			marker = "> "
		}
		b.WriteString(fmt.Sprintf("%s%-10s", marker, a))
		if (i+1)%4 == 0 {
			b.WriteString("\n")
		}
	}

	if m.submitting {
		b.WriteString("\n[Salvando...]\n")
	} else {
		b.WriteString("\n[Salvar]\n")
	}

	return renderPage(
		"PERFIL",
		strings.TrimRight(b.String(), "\n"),
		"tab: alternar campo │ ←/→/↑/↓: avatar │ enter: salvar │ esc: voltar",
	)
}
