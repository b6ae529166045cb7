// Package snippet provides the snippet entity and its file persistence.
//
// A snippet library is a single JSON file holding an array of snippets in
// the canonical shape the desktop app has always written, with PascalCase
// keys:
//
//	[{"Id": "...", "Title": "...", "Content": "...",
//	  "CreatedAt": "...", "ModifiedAt": "...", "Order": 0}]
//
// An older interchange shape with Text/Description rows is still readable,
// and is the shape Export writes so other tools and older builds can
// consume the file.
package snippet

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultPreviewLength is the preview truncation limit used by list views.
const DefaultPreviewLength = 100

var newlineReplacer = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// Snippet is a reusable piece of prompt text shown in the host's side panel.
// The JSON tags are the canonical file format keys, so they stay PascalCase.
type Snippet struct {
	ID         string    `json:"Id"`
	Title      string    `json:"Title"`
	Content    string    `json:"Content"`
	CreatedAt  time.Time `json:"CreatedAt"`
	ModifiedAt time.Time `json:"ModifiedAt"`
	Order      int       `json:"Order"`
}

// New creates a snippet with a fresh ID and both timestamps set to now (UTC).
// Order is left at zero; the list owner assigns the real rank.
func New(title, content string) Snippet {
	now := time.Now().UTC()
	return Snippet{
		ID:         uuid.New().String(),
		Title:      title,
		Content:    content,
		CreatedAt:  now,
		ModifiedAt: now,
	}
}

// Touch updates ModifiedAt to now (UTC). CreatedAt never changes.
func (s *Snippet) Touch() {
	s.ModifiedAt = time.Now().UTC()
}

// IsBlank reports whether both title and content are empty or whitespace.
// Blank snippets can be suppressed from list views by host policy.
func (s *Snippet) IsBlank() bool {
	return strings.TrimSpace(s.Title) == "" && strings.TrimSpace(s.Content) == ""
}

// Preview returns a single-line rendering of the content for list rows:
// newlines collapse to single spaces and the result is truncated to maxLen
// runes with a "..." marker. Computed per call, never stored.
func (s *Snippet) Preview(maxLen int) string {
	flat := newlineReplacer.Replace(s.Content)
	if maxLen <= 0 {
		return flat
	}
	runes := []rune(flat)
	if len(runes) <= maxLen {
		return flat
	}
	return string(runes[:maxLen]) + "..."
}
