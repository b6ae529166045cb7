package manager

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	"github.com/zhubert/snipdeck-core/config"
	"github.com/zhubert/snipdeck-core/logger"
	"github.com/zhubert/snipdeck-core/paths"
	"github.com/zhubert/snipdeck-core/snippet"
)

// Compile-time interface satisfaction check.
var _ Preferences = (*config.Config)(nil)

// Preferences defines the subset of host settings the manager applies to
// its view state. This decouples the manager from the concrete
// config.Config struct.
//
// *config.Config satisfies this interface implicitly.
type Preferences interface {
	GetSortMode() string
	GetSortDirection() string
	GetHideBlankSnippets() bool
}

// SnippetManager owns the in-memory snippet list and its persistence.
// It sits between the host UI and the store: the host calls operations,
// the manager mutates, persists, and reports back through callbacks.
//
// Mutating operations never fail from the caller's point of view. A
// failed save is logged and reported through OnSaveError while the
// in-memory list stays authoritative, so one bad write cannot wedge the
// panel. Import and export return errors because the user asked for
// those directly and expects feedback.
//
// After every mutating operation the Order fields of the working set are
// exactly 0..N-1 matching list position.
type SnippetManager struct {
	mu       sync.RWMutex
	store    *snippet.Store
	snippets []snippet.Snippet
	opts     Options

	sortMode      SortMode
	sortDirection SortDirection
	filter        string

	// Callbacks the host assigns before first use. All are optional and
	// invoked without the manager lock held, so they may call back in.
	OnChanged   func()                // after every mutating operation
	OnSelected  func(snippet.Snippet) // single-click routing
	OnActivated func(snippet.Snippet) // double-click routing
	OnSaveError func(error)           // a mutation failed to persist
}

// New creates a snippet manager over the given store.
func New(store *snippet.Store, opts Options) *SnippetManager {
	return &SnippetManager{
		store:    store,
		snippets: []snippet.Snippet{},
		opts:     opts,
	}
}

// LoadSnippets repopulates the working set from disk and fires OnChanged.
// Rows are ordered by their stored Order and renumbered densely, so a
// hand-edited file with gaps still produces positions 0..N-1.
//
// When Options.Starters is set and no library file exists yet, the
// starter pack is written out as the initial library. Seeding only
// happens for a genuinely absent file; an existing file that fails to
// parse loads as empty rather than being overwritten with starters.
func (m *SnippetManager) LoadSnippets() {
	m.mu.Lock()
	var saveErr error
	if m.opts.Starters != nil && !m.store.Exists() {
		m.snippets = seedFromPack(m.opts.Starters)
		saveErr = m.persistLocked()
		logger.WithComponent("manager").Info("seeded starter snippets",
			"pack", m.opts.Starters.Name, "count", len(m.snippets))
	} else {
		m.snippets = m.store.Load()
		slices.SortStableFunc(m.snippets, func(a, b snippet.Snippet) int {
			return cmp.Compare(a.Order, b.Order)
		})
		m.renumberLocked()
	}
	m.mu.Unlock()

	m.afterMutation(saveErr)
}

// seedFromPack turns starter entries into full snippets with fresh IDs,
// current timestamps, and dense order.
func seedFromPack(pack *snippet.StarterPack) []snippet.Snippet {
	seeded := make([]snippet.Snippet, 0, len(pack.Snippets))
	for i, entry := range pack.Snippets {
		s := snippet.New(entry.Title, entry.Content)
		s.Order = i
		seeded = append(seeded, s)
	}
	return seeded
}

// GetSnippets returns a copy of the working set in custom order.
func (m *SnippetManager) GetSnippets() []snippet.Snippet {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]snippet.Snippet, len(m.snippets))
	copy(out, m.snippets)
	return out
}

// GetSnippet returns a copy of the snippet with the given ID, or nil if
// no such snippet exists.
func (m *SnippetManager) GetSnippet(id string) *snippet.Snippet {
	m.mu.RLock()
	defer m.mu.RUnlock()
	idx := m.indexLocked(id)
	if idx < 0 {
		return nil
	}
	s := m.snippets[idx]
	return &s
}

// FilePath returns the path of the backing library file.
func (m *SnippetManager) FilePath() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.store.Path()
}

// Filter returns the filter string from the most recent Refresh.
func (m *SnippetManager) Filter() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.filter
}

// SortMode returns the active sort mode.
func (m *SnippetManager) SortMode() SortMode {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sortMode
}

// SortDirection returns the active sort direction.
func (m *SnippetManager) SortDirection() SortDirection {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sortDirection
}

// Preview returns the one-line preview for a snippet, or the empty
// string if no such snippet exists.
func (m *SnippetManager) Preview(id string) string {
	s := m.GetSnippet(id)
	if s == nil {
		return ""
	}
	return s.Preview(m.opts.previewLength())
}

// Refresh builds the list view: a case-insensitive substring filter over
// title and content (empty filter matches everything), the hide-blank
// policy, then a stable sort for the active mode and direction. The
// working set itself is untouched; the filter is remembered as the
// current one.
func (m *SnippetManager) Refresh(filter string) []snippet.Snippet {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.filter = filter
	return buildView(m.snippets, filter, m.opts, m.sortMode, m.sortDirection)
}

// AddSnippet appends a new snippet to the end of the list, persists, and
// notifies. The created snippet is returned.
func (m *SnippetManager) AddSnippet(title, content string) snippet.Snippet {
	m.mu.Lock()
	s := snippet.New(title, content)
	s.Order = len(m.snippets)
	m.snippets = append(m.snippets, s)
	err := m.persistLocked()
	m.mu.Unlock()

	m.afterMutation(err)
	return s
}

// EditSnippet updates a snippet's title and content in place, stamps its
// modification time, persists, and notifies. Returns false without side
// effects if no snippet has the given ID.
func (m *SnippetManager) EditSnippet(id, title, content string) bool {
	m.mu.Lock()
	idx := m.indexLocked(id)
	if idx < 0 {
		m.mu.Unlock()
		return false
	}
	m.snippets[idx].Title = title
	m.snippets[idx].Content = content
	m.snippets[idx].Touch()
	err := m.persistLocked()
	m.mu.Unlock()

	m.afterMutation(err)
	return true
}

// DeleteSnippet removes a snippet, renumbers the remainder, persists,
// and notifies. Returns false without side effects if no snippet has the
// given ID.
func (m *SnippetManager) DeleteSnippet(id string) bool {
	m.mu.Lock()
	idx := m.indexLocked(id)
	if idx < 0 {
		m.mu.Unlock()
		return false
	}
	m.snippets = slices.Delete(m.snippets, idx, idx+1)
	m.renumberLocked()
	err := m.persistLocked()
	m.mu.Unlock()

	m.afterMutation(err)
	return true
}

// ReorderSnippet moves one snippet so it sits immediately before the
// target snippet, renumbers, persists, and notifies. Returns false
// without side effects when the IDs are equal or either is absent.
//
// The operation is mode-agnostic; whether drag affordances are enabled
// outside Custom mode is the host's concern.
func (m *SnippetManager) ReorderSnippet(movedID, targetID string) bool {
	if movedID == targetID {
		return false
	}

	m.mu.Lock()
	from := m.indexLocked(movedID)
	to := m.indexLocked(targetID)
	if from < 0 || to < 0 {
		m.mu.Unlock()
		return false
	}
	moved := m.snippets[from]
	m.snippets = slices.Delete(m.snippets, from, from+1)
	if from < to {
		to--
	}
	m.snippets = slices.Insert(m.snippets, to, moved)
	m.renumberLocked()
	err := m.persistLocked()
	m.mu.Unlock()

	m.afterMutation(err)
	return true
}

// ImportSnippets reads a snippet file in either supported format and
// appends its rows to the library with fresh IDs, then persists and
// notifies. The number of imported snippets is returned.
//
// Read and parse failures propagate before anything changes. If the save
// after a successful read fails, the count is returned alongside the
// error and the imported snippets remain in the working set.
func (m *SnippetManager) ImportSnippets(path string) (int, error) {
	imported, err := m.store.Import(path)
	if err != nil {
		return 0, err
	}

	m.mu.Lock()
	m.snippets = append(m.snippets, imported...)
	m.renumberLocked()
	saveErr := m.persistLocked()
	m.mu.Unlock()

	m.notifyChanged()
	if saveErr != nil {
		return len(imported), fmt.Errorf("imported %d snippets but failed to save library: %w", len(imported), saveErr)
	}
	return len(imported), nil
}

// ExportSnippets writes the full working set to path in the legacy
// interchange shape.
func (m *SnippetManager) ExportSnippets(path string) error {
	return m.store.Export(m.GetSnippets(), path)
}

// SelectSnippet fires OnSelected with a copy of the snippet. No-op if
// the ID is absent or no callback is assigned.
func (m *SnippetManager) SelectSnippet(id string) {
	s := m.GetSnippet(id)
	if s == nil || m.OnSelected == nil {
		return
	}
	m.OnSelected(*s)
}

// ActivateSnippet fires OnActivated with a copy of the snippet. No-op if
// the ID is absent or no callback is assigned.
func (m *SnippetManager) ActivateSnippet(id string) {
	s := m.GetSnippet(id)
	if s == nil || m.OnActivated == nil {
		return
	}
	m.OnActivated(*s)
}

// SetSortMode changes the view's sort mode. Nothing is persisted and no
// notification fires; the host re-renders via Refresh.
func (m *SnippetManager) SetSortMode(mode SortMode) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sortMode = mode
}

// SetSortDirection changes the view's sort direction. Nothing is
// persisted and no notification fires; the host re-renders via Refresh.
func (m *SnippetManager) SetSortDirection(dir SortDirection) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sortDirection = dir
}

// ApplyPreferences sets sort mode, sort direction, and the hide-blank
// policy from host settings in one call.
func (m *SnippetManager) ApplyPreferences(p Preferences) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sortMode = ParseSortMode(p.GetSortMode())
	m.sortDirection = ParseSortDirection(p.GetSortDirection())
	m.opts.HideBlank = p.GetHideBlankSnippets()
}

// UseStore points the manager at a different library file and reloads.
// A store whose path refers to the same file is a no-op, so re-applying
// unchanged settings does not reload the list. Returns true when the
// store actually changed.
func (m *SnippetManager) UseStore(store *snippet.Store) bool {
	m.mu.Lock()
	if store == nil || paths.SamePath(m.store.Path(), store.Path()) {
		m.mu.Unlock()
		return false
	}
	m.store = store
	m.mu.Unlock()

	logger.WithComponent("manager").Info("switched snippet file", "path", store.Path())
	m.LoadSnippets()
	return true
}

// indexLocked returns the position of id in the working set, -1 if
// absent. Caller must hold mu.
func (m *SnippetManager) indexLocked(id string) int {
	return slices.IndexFunc(m.snippets, func(s snippet.Snippet) bool {
		return s.ID == id
	})
}

// renumberLocked rewrites Order to match list position. Caller must
// hold mu.
func (m *SnippetManager) renumberLocked() {
	for i := range m.snippets {
		m.snippets[i].Order = i
	}
}

// persistLocked saves the working set through the store. Caller must
// hold mu.
func (m *SnippetManager) persistLocked() error {
	return m.store.Save(m.snippets)
}

// afterMutation reports a failed save and fires OnChanged. Must be
// called without holding mu so callbacks can reenter the manager.
func (m *SnippetManager) afterMutation(saveErr error) {
	if saveErr != nil {
		logger.WithComponent("manager").Error("failed to persist snippets", "error", saveErr)
		if m.OnSaveError != nil {
			m.OnSaveError(saveErr)
		}
	}
	m.notifyChanged()
}

// notifyChanged fires OnChanged if assigned. Must be called without
// holding mu.
func (m *SnippetManager) notifyChanged() {
	if m.OnChanged != nil {
		m.OnChanged()
	}
}
