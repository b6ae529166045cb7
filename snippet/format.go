package snippet

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
)

// legacyRow is the old interchange shape: the title lives in Description
// and the prompt text in Text.
type legacyRow struct {
	Text        string `json:"Text"`
	Description string `json:"Description"`
}

// isLegacyFormat classifies raw library JSON by inspecting the keys of the
// first array element rather than searching the raw bytes, so a snippet
// whose content merely mentions the legacy key names cannot misclassify
// the file. A row is legacy when it carries a Text or Description key (any
// casing) and neither an Id nor a Content key. Empty arrays and
// undecodable data classify as canonical.
func isLegacyFormat(data []byte) bool {
	var rows []map[string]json.RawMessage
	if err := json.Unmarshal(data, &rows); err != nil {
		return false
	}
	if len(rows) == 0 {
		return false
	}

	hasLegacyKey := false
	for key := range rows[0] {
		switch strings.ToLower(key) {
		case "text", "description":
			hasLegacyKey = true
		case "id", "content":
			return false
		}
	}
	return hasLegacyKey
}

// decodeLibrary parses raw library JSON in either format. Legacy rows are
// upgraded to full snippets with fresh IDs, both timestamps set to now,
// and Order zero; canonical rows pass through unchanged.
func decodeLibrary(data []byte) ([]Snippet, error) {
	if isLegacyFormat(data) {
		var rows []legacyRow
		if err := json.Unmarshal(data, &rows); err != nil {
			return nil, err
		}

		now := time.Now().UTC()
		snippets := make([]Snippet, 0, len(rows))
		for _, row := range rows {
			snippets = append(snippets, Snippet{
				ID:         uuid.New().String(),
				Title:      row.Description,
				Content:    row.Text,
				CreatedAt:  now,
				ModifiedAt: now,
			})
		}
		return snippets, nil
	}

	var snippets []Snippet
	if err := json.Unmarshal(data, &snippets); err != nil {
		return nil, err
	}
	return snippets, nil
}

// encodeLegacy renders snippets in the legacy interchange shape,
// preserving list order.
func encodeLegacy(snippets []Snippet) ([]byte, error) {
	rows := make([]legacyRow, 0, len(snippets))
	for _, s := range snippets {
		rows = append(rows, legacyRow{Text: s.Content, Description: s.Title})
	}
	return json.MarshalIndent(rows, "", "  ")
}
