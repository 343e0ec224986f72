package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var asciiLogo = []string{
	`███████╗ ██████╗ ██╗   ██╗██╗     `,
	`██╔════╝██╔═══██╗██║   ██║██║     `,
	`███████╗██║   ██║██║   ██║██║     `,
	`╚════██║██║   ██║██║   ██║██║     `,
	`███████║╚██████╔╝╚██████╔╝███████╗`,
	`╚══════╝ ╚═════╝  ╚═════╝ ╚══════╝`,
}

func renderHomeScreen(width, height int, updateVersion string) string {
	logoStyle := lipgloss.NewStyle().Foreground(colorAccent)
	keyStyle := lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(colorSecondary)
	taglineStyle := lipgloss.NewStyle().Foreground(colorDim)

	var lines []string

	for _, l := range asciiLogo {
		lines = append(lines, logoStyle.Render(l))
	}
	lines = append(lines, taglineStyle.Render("s c r i b e"))
	lines = append(lines, "")
	lines = append(lines, taglineStyle.Render("Blending Ancient Wisdom with Modern Science"))
	lines = append(lines, "")
	lines = append(lines, "")

	lines = append(lines, "          "+keyStyle.Render("[g]")+"  "+labelStyle.Render("Generate a Post"))
	lines = append(lines, "          "+keyStyle.Render("[t]")+"  "+labelStyle.Render("Cached Topics"))
	lines = append(lines, "")
	lines = append(lines, "          "+keyStyle.Render("[q]")+"  "+labelStyle.Render("Quit"))

	if updateVersion != "" {
		lines = append(lines, "")
		lines = append(lines, "          "+logoStyle.Render("Update available: v"+updateVersion))
	}

	content := strings.Join(lines, "\n")
	contentHeight := strings.Count(content, "\n") + 1

	topPad := (height - contentHeight) / 3
	if topPad < 0 {
		topPad = 0
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top,
		strings.Repeat("\n", topPad)+content)
}
