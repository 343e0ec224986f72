package ai

import (
	"strings"
	"testing"

	"github.com/soulspace/soulscribe/internal/config"
)

func TestBuildPromptEmbedsTopic(t *testing.T) {
	p := BuildPrompt("Benefits of Pranayama for Stress Management")
	if !strings.Contains(p, "Write a comprehensive blog post about Benefits of Pranayama for Stress Management") {
		t.Error("prompt missing topic")
	}
}

func TestBuildPromptTrimsTopic(t *testing.T) {
	p := BuildPrompt("  yoga nidra \n")
	if !strings.Contains(p, "blog post about yoga nidra.") {
		t.Errorf("expected trimmed topic in prompt")
	}
}

func TestBuildPromptCarriesStructure(t *testing.T) {
	p := BuildPrompt("anything")
	for _, heading := range []string{
		"### The Soul Space Perspective",
		"### Understanding the Science",
		"### Traditional Wisdom Meets Modern Research",
		"### Practical Applications",
		"### Key Takeaways",
		"### Scientific References",
	} {
		if !strings.Contains(p, heading) {
			t.Errorf("prompt missing structure heading %q", heading)
		}
	}
}

func TestNewUnknownProvider(t *testing.T) {
	_, err := New(&config.AIConfig{Provider: "gemini"}, "key")
	if err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestNewMissingKey(t *testing.T) {
	_, err := New(&config.AIConfig{Provider: "claude"}, "")
	if err == nil {
		t.Error("expected error for missing API key")
	}
}

func TestNewNilConfig(t *testing.T) {
	_, err := New(nil, "key")
	if err == nil {
		t.Error("expected error for nil config")
	}
}

func TestNewValidProviders(t *testing.T) {
	for _, provider := range []string{"claude", "openai"} {
		g, err := New(&config.AIConfig{Provider: provider}, "key")
		if err != nil {
			t.Errorf("New(%q): unexpected error: %v", provider, err)
		}
		if g == nil {
			t.Errorf("New(%q): nil generator", provider)
		}
	}
}
