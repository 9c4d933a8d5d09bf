package tui

type welcomeModel struct {
	items   []string
	idx     int
	version string
	notice  string
}

func newWelcomeModel(version string) welcomeModel {
	return welcomeModel{
		items:   []string{"Entrar", "Criar conta"},
		version: version,
	}
}

func (m welcomeModel) View() string {
	out := titleStyle.Render("Quest Keeper")
	if m.version != "" {
		out += "  " + helpStyle.Render("v"+m.version)
	}
	out += "\n\nEscolha uma opção:\n\n"
	for i, item := range m.items {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		out += cursor + item + "\n"
	}
	if m.notice != "" {
		out += "\n" + m.notice + "\n"
	}
	out += "\n" + helpStyle.Render("q sair")
	return out
}
