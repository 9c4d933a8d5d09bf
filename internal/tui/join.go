package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/lmiranda/quest-keeper/models"
)

type joinModel struct {
	input      textinput.Model
	submitting bool
}

func newJoinModel() joinModel {
	code := textinput.New()
	code.Placeholder = "ABC123"
	code.CharLimit = models.InviteCodeLength
	code.Width = models.InviteCodeLength + 2
	code.Focus()

	return joinModel{input: code}
}

func (m joinModel) View() string {
	var b strings.Builder
	b.WriteString("Digite o código de convite de " + titleStyle.Render("6 caracteres") + ":\n\n")
	b.WriteString("Código │ [ ")
	b.WriteString(m.input.View())
	b.WriteString(" ]\n")

	if m.submitting {
		b.WriteString("\n[Entrando na mesa...]\n")
	}

	return renderPage("ENTRAR POR CÓDIGO", strings.TrimRight(b.String(), "\n"), "esc: voltar │ enter: confirmar")
}
