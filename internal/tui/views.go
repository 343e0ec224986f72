package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderInputScreen() string {
	label := inputLabelStyle.Render("Enter blog topic")

	checkbox := checkboxOffStyle.Render("[ ] use cached posts")
	if a.useCache {
		checkbox = checkboxOnStyle.Render("[x] use cached posts")
	}

	inputWidth := a.width / 2
	if inputWidth < 40 {
		inputWidth = 40
	}
	a.topicInput.Width = inputWidth

	card := inputCardStyle.Render(
		label + "\n\n" + a.topicInput.View() + "\n\n" + checkbox,
	)

	content := lipgloss.JoinVertical(lipgloss.Left, a.header(), "", card)
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, content)
}

func (a *App) renderGeneratingScreen() string {
	topic := strings.TrimSpace(a.topicInput.Value())
	if topic == "" {
		topic = a.docTopic
	}
	msg := a.spinner.View() + " Generating your blog post about " +
		docTitleStyle.Render(topic) + "..."
	note := helpDimStyle.Render("this can take a minute")

	content := lipgloss.JoinVertical(lipgloss.Center, msg, "", note)
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, content)
}

func (a *App) renderDocScreen() string {
	contentWidth := a.width - 6
	if contentWidth < 20 {
		contentWidth = 20
	}
	contentHeight := a.height - 5
	if contentHeight < 3 {
		contentHeight = 3
	}

	body := renderDocument(a.doc, contentWidth, a.err != nil)

	lines := strings.Split(body, "\n")
	if a.scroll >= len(lines) {
		a.scroll = max(0, len(lines)-1)
	}
	if a.scroll > 0 {
		lines = lines[a.scroll:]
	}
	if len(lines) > contentHeight {
		lines = lines[:contentHeight]
	} else {
		for len(lines) < contentHeight {
			lines = append(lines, "")
		}
	}

	pane := docPaneStyle.Width(a.width - 4).Render(strings.Join(lines, "\n"))

	footer := ""
	if a.savedPath != "" {
		footer = savedNoteStyle.Render(" Saved to " + a.savedPath + "  (o to open)")
	}

	return lipgloss.JoinVertical(lipgloss.Left, a.header(), pane, footer)
}

// renderDocument styles a canonical markdown document (or a failure
// message, which gets the same surface) for terminal display.
func renderDocument(doc string, width int, failed bool) string {
	if failed {
		return errorStyle.Width(width).Render(wrapText(doc, width))
	}

	var out []string
	for _, line := range strings.Split(doc, "\n") {
		switch {
		case strings.HasPrefix(line, "## "):
			out = append(out, docTitleStyle.Render(strings.TrimPrefix(line, "## ")))
		case strings.HasPrefix(line, "### "):
			out = append(out, docHeadingStyle.Render(strings.TrimPrefix(line, "### ")))
		default:
			out = append(out, docBodyStyle.Render(wrapText(line, width)))
		}
	}
	return strings.Join(out, "\n")
}

func (a *App) renderTopicsScreen() string {
	if len(a.topics) == 0 {
		empty := helpDimStyle.Render("No cached posts yet — press g to generate one")
		return lipgloss.JoinVertical(lipgloss.Left, a.header(), "",
			lipgloss.Place(a.width, a.height-4, lipgloss.Center, lipgloss.Center, empty))
	}

	var rows []string
	for i, e := range a.topics {
		when := topicTimeStyle.Render(e.GeneratedAt.Format("Jan 2 15:04"))
		row := fmt.Sprintf("  %s  %s", e.Topic, when)
		if i == a.topicsCursor {
			row = topicSelectedStyle.Render("> "+e.Topic) + "  " + when
		}
		rows = append(rows, row)
	}

	list := strings.Join(rows, "\n")
	return lipgloss.JoinVertical(lipgloss.Left, a.header(), "", list)
}

func wrapText(s string, width int) string {
	if width <= 0 {
		return s
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
		} else {
			line += " " + w
		}
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n")
}
