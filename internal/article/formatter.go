package article

import (
	"fmt"
	"strings"
)

const signature = "Namaste,\nJen Patel\nFounder, Soul Space"

// Format renders a Post as canonical Soul Space markdown. The output uses
// the exact headings Parse recognizes, so a formatted post parses back to
// the same Post.
func Format(p Post) string {
	var b strings.Builder

	b.WriteString(titlePrefix + p.Title + "\n\n")

	b.WriteString(headingPerspective + "\n")
	b.WriteString(p.Perspective + "\n\n")

	b.WriteString(headingScience + "\n")
	b.WriteString(p.Science + "\n\n")

	b.WriteString(headingIntegration + "\n")
	b.WriteString(p.Integration + "\n\n")

	b.WriteString(headingApplications + "\n")
	for _, tip := range p.Applications {
		b.WriteString("- " + tip + "\n")
	}
	b.WriteString("\n")

	b.WriteString(headingTakeaways + "\n")
	for _, t := range p.Takeaways {
		b.WriteString("- " + t + "\n")
	}
	b.WriteString("\n")

	b.WriteString(headingReferences + "\n")
	for i, ref := range p.References {
		fmt.Fprintf(&b, "%d. %s\n", i+1, ref)
	}
	b.WriteString("\n")

	b.WriteString(signature)
	return b.String()
}
