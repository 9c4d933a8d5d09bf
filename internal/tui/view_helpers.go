package tui

import (
	"fmt"
	"strings"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		lines := strings.Split(data, "\n")
		for _, line := range lines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString("  ")
	b.WriteString(helpStyle.Render("ctrl+c: sair"))

	return b.String()
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

func fitText(v string, max int) string {
	if max <= 0 || len([]rune(v)) <= max {
		return v
	}
	r := []rune(v)
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

func yesNo(v bool) string {
	if v {
		return "Sim"
	}
	return "Não"
}

func kindLabel(kind string) string {
	switch kind {
	case "characters":
		return "Personagens"
	case "locations":
		return "Locais"
	case "stories":
		return "Histórias"
	case "infos":
		return "Informações"
	case "monsters":
		return "Monstros"
	default:
		return "Desconhecido"
	}
}

func roleLabel(role string) string {
	switch role {
	case "MASTER":
		return "Mestre"
	case "PLAYER":
		return "Jogador"
	default:
		return role
	}
}

func statusBadge(status string) string {
	return fmt.Sprintf("[%s]", valueOrDash(status))
}
