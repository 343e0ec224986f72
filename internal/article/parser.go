package article

import (
	"strings"
	"unicode"
)

type section int

const (
	sectionNone section = iota
	sectionPerspective
	sectionScience
	sectionIntegration
	sectionApplications
	sectionTakeaways
	sectionReferences
)

var headingSections = []struct {
	heading string
	section section
}{
	{headingPerspective, sectionPerspective},
	{headingScience, sectionScience},
	{headingIntegration, sectionIntegration},
	{headingApplications, sectionApplications},
	{headingTakeaways, sectionTakeaways},
	{headingReferences, sectionReferences},
}

type lineKind int

const (
	lineBlank lineKind = iota
	lineTitle
	lineSection
	lineSignOff
	lineListItem
	lineText
)

type lineClass struct {
	kind    lineKind
	section section // set for lineSection
	text    string  // title text or marker-stripped list item
}

// classifyLine tags a whitespace-trimmed line. Whether a list item counts
// as one is decided by the state machine: inside free-text sections it is
// ordinary text.
func classifyLine(l string) lineClass {
	if l == "" {
		return lineClass{kind: lineBlank}
	}
	for _, hs := range headingSections {
		if strings.HasPrefix(l, hs.heading) {
			return lineClass{kind: lineSection, section: hs.section}
		}
	}
	if strings.HasPrefix(l, titlePrefix) {
		return lineClass{kind: lineTitle, text: strings.TrimPrefix(l, titlePrefix)}
	}
	if strings.HasPrefix(l, signOffPrefix) {
		return lineClass{kind: lineSignOff}
	}
	if isListItem(l) {
		return lineClass{kind: lineListItem, text: stripListMarker(l)}
	}
	return lineClass{kind: lineText}
}

func isListItem(l string) bool {
	if strings.HasPrefix(l, "- ") || strings.HasPrefix(l, "* ") {
		return true
	}
	r := []rune(l)[0]
	return unicode.IsDigit(r)
}

func stripListMarker(l string) string {
	return strings.TrimSpace(strings.TrimLeft(l, "-*0123456789. "))
}

// Parse converts raw generated markdown into a Post. It is total:
// malformed input degrades to empty fields, it never fails. Model output
// varies a lot between runs, so everything unrecognized is tolerated and
// everything recognized is matched by exact heading prefix.
func Parse(raw string) Post {
	var p Post
	state := sectionNone
	var buf []string

	for _, line := range strings.Split(raw, "\n") {
		l := strings.TrimSpace(line)
		c := classifyLine(l)

		switch c.kind {
		case lineBlank, lineSignOff:
			// skipped in every state

		case lineTitle:
			p.Title = c.text

		case lineSection:
			flush(&p, state, buf)
			buf = nil
			state = c.section

		case lineListItem:
			switch state {
			case sectionApplications, sectionTakeaways, sectionReferences:
				buf = append(buf, c.text)
			case sectionNone:
				// preamble before any heading is dropped
			default:
				// inside free-text sections a bullet is just text
				buf = append(buf, l)
			}

		case lineText:
			switch state {
			case sectionApplications, sectionTakeaways, sectionReferences:
				// non-bullet lines inside list sections are dropped
			case sectionNone:
			default:
				buf = append(buf, l)
			}
		}
	}

	// The section open at end of input still counts.
	flush(&p, state, buf)
	return p
}

func flush(p *Post, state section, buf []string) {
	if len(buf) == 0 {
		return
	}
	switch state {
	case sectionPerspective:
		p.Perspective = strings.Join(buf, "\n")
	case sectionScience:
		p.Science = strings.Join(buf, "\n")
	case sectionIntegration:
		p.Integration = strings.Join(buf, "\n")
	case sectionApplications:
		p.Applications = compactItems(buf)
	case sectionTakeaways:
		p.Takeaways = compactItems(buf)
	case sectionReferences:
		p.References = compactItems(buf)
	}
}

func compactItems(buf []string) []string {
	var items []string
	for _, it := range buf {
		if it != "" {
			items = append(items, it)
		}
	}
	return items
}
