// Package article holds the structured form of a generated Soul Space post
// and the parser/formatter pair that converts between it and markdown text.
package article

// Section headings are a wire contract between Parse and Format: the
// formatter's output must parse back to the same post.
const (
	headingPerspective  = "### The Soul Space Perspective"
	headingScience      = "### Understanding the Science"
	headingIntegration  = "### Traditional Wisdom Meets Modern Research"
	headingApplications = "### Practical Applications"
	headingTakeaways    = "### Key Takeaways"
	headingReferences   = "### Scientific References"

	titlePrefix   = "## "
	signOffPrefix = "Namaste,"
)

// Post is the structured representation of one generated article.
// Every field is always present; sections missing from the source text
// are empty, never nil-vs-missing distinctions.
type Post struct {
	Title        string
	Perspective  string
	Science      string
	Integration  string
	Applications []string
	Takeaways    []string
	References   []string
}
