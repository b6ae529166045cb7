package snippet

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// StarterSnippet is one entry of a starter pack.
type StarterSnippet struct {
	Title   string `yaml:"title"`
	Content string `yaml:"content"`
}

// StarterPack is a set of example snippets seeded into a brand-new library
// so the side panel is not empty on first launch. Users can replace the
// built-in pack by dropping a starters.yaml next to their config file.
type StarterPack struct {
	Name     string           `yaml:"name"`
	Snippets []StarterSnippet `yaml:"snippets"`
}

// LoadStarterPack reads a user-authored starter pack.
// Returns nil, nil if the file does not exist.
func LoadStarterPack(path string) (*StarterPack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read starter pack: %w", err)
	}

	var pack StarterPack
	if err := yaml.Unmarshal(data, &pack); err != nil {
		return nil, fmt.Errorf("failed to parse starter pack: %w", err)
	}

	return &pack, nil
}

// ResolveStarterPack loads the user pack at path when present, falling
// back to the built-in defaults.
func ResolveStarterPack(path string) (*StarterPack, error) {
	pack, err := LoadStarterPack(path)
	if err != nil {
		return nil, err
	}
	if pack == nil {
		return DefaultStarterPack(), nil
	}
	return pack, nil
}

// DefaultStarterPack returns the built-in example snippets.
func DefaultStarterPack() *StarterPack {
	return &StarterPack{
		Name: "starter",
		Snippets: []StarterSnippet{
			{
				Title:   "Explain this code",
				Content: "Explain what the following code does, then point out anything surprising about it:\n\n",
			},
			{
				Title:   "Code review",
				Content: "Review the following diff as a senior engineer. Focus on correctness, edge cases, and naming. Skip style nits:\n\n",
			},
			{
				Title:   "Summarize thread",
				Content: "Summarize the discussion below into key decisions, open questions, and action items:\n\n",
			},
			{
				Title:   "Improve writing",
				Content: "Rewrite the following to be clearer and about half as long without changing its meaning:\n\n",
			},
			{
				Title:   "Brainstorm names",
				Content: "Suggest ten names for the thing described below. Vary the tone from safe to playful:\n\n",
			},
		},
	}
}
