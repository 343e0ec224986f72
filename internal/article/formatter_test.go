package article

import (
	"reflect"
	"strings"
	"testing"
)

func samplePost() Post {
	return Post{
		Title:        "Breath and Calm",
		Perspective:  "Breathing slows the mind.",
		Science:      "Vagal tone increases with slow exhalation.",
		Integration:  "Ancient and modern agree.",
		Applications: []string{"Practice 5 minutes daily"},
		Takeaways:    []string{"Slow breath, calm mind"},
		References:   []string{"Smith 2020"},
	}
}

func TestFormatHeadings(t *testing.T) {
	out := Format(samplePost())

	for _, want := range []string{
		"## Breath and Calm",
		"### The Soul Space Perspective",
		"### Understanding the Science",
		"### Traditional Wisdom Meets Modern Research",
		"### Practical Applications",
		"### Key Takeaways",
		"### Scientific References",
	} {
		if !strings.Contains(out, want+"\n") {
			t.Errorf("output missing heading line %q", want)
		}
	}

	if !strings.Contains(out, "- Practice 5 minutes daily\n") {
		t.Error("applications not rendered as dash bullets")
	}
	if !strings.Contains(out, "- Slow breath, calm mind\n") {
		t.Error("takeaways not rendered as dash bullets")
	}
	if !strings.Contains(out, "1. Smith 2020\n") {
		t.Error("references not rendered as numbered items")
	}
	if !strings.HasSuffix(out, "Namaste,\nJen Patel\nFounder, Soul Space") {
		t.Error("output missing closing signature")
	}
}

func TestFormatDeterministic(t *testing.T) {
	p := samplePost()
	if Format(p) != Format(p) {
		t.Error("Format is not deterministic")
	}
}

func TestFormatReferenceNumbering(t *testing.T) {
	p := Post{References: []string{"A", "B", "C"}}
	out := Format(p)
	for _, want := range []string{"1. A\n", "2. B\n", "3. C\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

// Formatted output must parse back to the same post: the headings are a
// wire contract between Format and Parse.
func TestRoundTrip(t *testing.T) {
	posts := []Post{
		samplePost(),
		{
			Title:        "Hip Openers and the Nervous System",
			Perspective:  "Line one.\nLine two.",
			Science:      "Study findings here.",
			Integration:  "Both traditions converge.",
			Applications: []string{"Hold for five breaths", "Use props freely"},
			Takeaways:    []string{"Consistency beats intensity", "Listen to the body"},
			References:   []string{"Doe et al. 2018", "Roe 2022"},
		},
	}

	for _, p := range posts {
		got := Parse(Format(p))
		if got.Title != p.Title {
			t.Errorf("round-trip title = %q, want %q", got.Title, p.Title)
		}
		if got.Perspective != p.Perspective {
			t.Errorf("round-trip perspective = %q, want %q", got.Perspective, p.Perspective)
		}
		if got.Science != p.Science {
			t.Errorf("round-trip science = %q, want %q", got.Science, p.Science)
		}
		if got.Integration != p.Integration {
			t.Errorf("round-trip integration = %q, want %q", got.Integration, p.Integration)
		}
		if !reflect.DeepEqual(got.Applications, p.Applications) {
			t.Errorf("round-trip applications = %v, want %v", got.Applications, p.Applications)
		}
		if !reflect.DeepEqual(got.Takeaways, p.Takeaways) {
			t.Errorf("round-trip takeaways = %v, want %v", got.Takeaways, p.Takeaways)
		}
		if !reflect.DeepEqual(got.References, p.References) {
			t.Errorf("round-trip references = %v, want %v", got.References, p.References)
		}
	}
}

func TestRoundTripEmptyPost(t *testing.T) {
	got := Parse(Format(Post{}))
	if got.Title != "" || got.Perspective != "" || got.Science != "" || got.Integration != "" {
		t.Errorf("round-trip of empty post produced content: %+v", got)
	}
	if len(got.Applications) != 0 || len(got.Takeaways) != 0 || len(got.References) != 0 {
		t.Errorf("round-trip of empty post produced list items: %+v", got)
	}
}
