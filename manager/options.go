package manager

import "github.com/zhubert/snipdeck-core/snippet"

// Options configures list policy for a SnippetManager. The zero value
// gives the canonical behavior: blank snippets shown, Custom sort ignores
// direction, previews cut at snippet.DefaultPreviewLength, no seeding.
type Options struct {
	// HideBlank drops snippets with no title and no content from views.
	HideBlank bool

	// DirectionAppliesToCustom lets SortDescending reverse the manual
	// arrangement. Off by default: Custom order reads top to bottom the
	// way the user arranged it regardless of the direction toggle.
	DirectionAppliesToCustom bool

	// PreviewLength caps preview text in runes.
	// Zero means snippet.DefaultPreviewLength.
	PreviewLength int

	// Starters seeds a brand-new library on first load when non-nil.
	Starters *snippet.StarterPack
}

// previewLength returns the effective preview cap.
func (o Options) previewLength() int {
	if o.PreviewLength > 0 {
		return o.PreviewLength
	}
	return snippet.DefaultPreviewLength
}
