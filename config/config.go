package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/zhubert/snipdeck-core/paths"
)

// Send-key modes for the host input box.
const (
	SendKeyEnter     = "enter"
	SendKeyCtrlEnter = "ctrl-enter"
)

// Sort modes for the snippet list.
const (
	SortModeCustom  = "custom"
	SortModeTitle   = "title"
	SortModeCreated = "created"
)

// Sort directions for the snippet list.
const (
	SortAscending  = "asc"
	SortDescending = "desc"
)

// Config holds the application configuration
type Config struct {
	FontFamily string `json:"font_family,omitempty"` // Font family for the input box
	FontSize   int    `json:"font_size,omitempty"`   // Font size in points

	WindowX         int  `json:"window_x,omitempty"` // Last window position
	WindowY         int  `json:"window_y,omitempty"`
	WindowWidth     int  `json:"window_width,omitempty"` // Last window size
	WindowHeight    int  `json:"window_height,omitempty"`
	WindowMaximized bool `json:"window_maximized,omitempty"`

	PanelHidden bool `json:"panel_hidden,omitempty"` // Snippet panel collapsed (zero value = visible)
	PanelWidth  int  `json:"panel_width,omitempty"`  // Snippet panel width in pixels

	SendKeyMode string `json:"send_key_mode,omitempty"` // "enter" or "ctrl-enter"

	// Snippet file location overrides (see paths.SnippetFileOptions)
	SnippetFilePath string `json:"snippet_file_path,omitempty"` // Explicit full path
	SnippetFolder   string `json:"snippet_folder,omitempty"`    // Folder override
	SnippetFileName string `json:"snippet_file_name,omitempty"` // File name override

	SortMode          string `json:"sort_mode,omitempty"`           // "custom", "title", or "created"
	SortDirection     string `json:"sort_direction,omitempty"`      // "asc" or "desc"
	HideBlankSnippets bool   `json:"hide_blank_snippets,omitempty"` // Hide snippets with no title and no content

	Theme           string `json:"theme,omitempty"`             // UI theme name (e.g., "dark", "nord")
	WelcomeShown    bool   `json:"welcome_shown,omitempty"`     // Whether welcome modal has been shown
	LastSeenVersion string `json:"last_seen_version,omitempty"` // Last version user has seen changelog for

	mu       sync.RWMutex
	filePath string
}

// Load reads the config from disk, or creates a new one if it doesn't exist
func Load() (*Config, error) {
	path, err := paths.ConfigFilePath()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		filePath: path,
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	// Validate loaded config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the config holds recognized enum values.
// Out-of-range numeric fields are not errors; getters fall back to defaults.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch c.SendKeyMode {
	case "", SendKeyEnter, SendKeyCtrlEnter:
	default:
		return fmt.Errorf("unknown send key mode: %q", c.SendKeyMode)
	}

	switch c.SortMode {
	case "", SortModeCustom, SortModeTitle, SortModeCreated:
	default:
		return fmt.Errorf("unknown sort mode: %q", c.SortMode)
	}

	switch c.SortDirection {
	case "", SortAscending, SortDescending:
	default:
		return fmt.Errorf("unknown sort direction: %q", c.SortDirection)
	}

	return nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(c.filePath), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(c.filePath, data, 0644)
}

// SetFilePath sets the config file path (for testing).
func (c *Config) SetFilePath(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filePath = path
}

// GetFontFamily returns the input box font family, or empty string for the
// host's platform default
func (c *Config) GetFontFamily() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.FontFamily
}

// SetFontFamily sets the input box font family
func (c *Config) SetFontFamily(family string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.FontFamily = family
}

// GetFontSize returns the input box font size, defaulting to 13
func (c *Config) GetFontSize() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.FontSize <= 0 {
		return 13
	}
	return c.FontSize
}

// SetFontSize sets the input box font size
func (c *Config) SetFontSize(size int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.FontSize = size
}

// GetWindowGeometry returns the last window position and size.
// Width and height default to 1200x800 when unset.
func (c *Config) GetWindowGeometry() (x, y, width, height int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	width = c.WindowWidth
	height = c.WindowHeight
	if width <= 0 {
		width = 1200
	}
	if height <= 0 {
		height = 800
	}
	return c.WindowX, c.WindowY, width, height
}

// SetWindowGeometry records the window position and size
func (c *Config) SetWindowGeometry(x, y, width, height int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.WindowX = x
	c.WindowY = y
	c.WindowWidth = width
	c.WindowHeight = height
}

// GetWindowMaximized returns whether the window was maximized
func (c *Config) GetWindowMaximized() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.WindowMaximized
}

// SetWindowMaximized records whether the window is maximized
func (c *Config) SetWindowMaximized(maximized bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.WindowMaximized = maximized
}

// GetPanelVisible returns whether the snippet panel is shown.
// The field is stored inverted so the zero value means visible.
func (c *Config) GetPanelVisible() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return !c.PanelHidden
}

// SetPanelVisible sets whether the snippet panel is shown
func (c *Config) SetPanelVisible(visible bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.PanelHidden = !visible
}

// GetPanelWidth returns the snippet panel width, defaulting to 300
func (c *Config) GetPanelWidth() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.PanelWidth <= 0 {
		return 300
	}
	return c.PanelWidth
}

// SetPanelWidth sets the snippet panel width
func (c *Config) SetPanelWidth(width int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.PanelWidth = width
}

// GetSendKeyMode returns the send-key mode, defaulting to "enter"
func (c *Config) GetSendKeyMode() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.SendKeyMode == "" {
		return SendKeyEnter
	}
	return c.SendKeyMode
}

// SetSendKeyMode sets the send-key mode (enter or ctrl-enter)
func (c *Config) SetSendKeyMode(mode string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.SendKeyMode = mode
}

// GetSnippetFilePath returns the explicit snippet file path override
func (c *Config) GetSnippetFilePath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.SnippetFilePath
}

// SetSnippetFilePath sets the explicit snippet file path override.
// Pass empty string to clear the override.
func (c *Config) SetSnippetFilePath(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.SnippetFilePath = path
}

// GetSnippetFolder returns the snippet folder override
func (c *Config) GetSnippetFolder() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.SnippetFolder
}

// SetSnippetFolder sets the snippet folder override
func (c *Config) SetSnippetFolder(folder string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.SnippetFolder = folder
}

// GetSnippetFileName returns the snippet file name override
func (c *Config) GetSnippetFileName() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.SnippetFileName
}

// SetSnippetFileName sets the snippet file name override
func (c *Config) SetSnippetFileName(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.SnippetFileName = name
}

// SnippetFileOptions assembles the path-resolution options from the
// configured overrides.
func (c *Config) SnippetFileOptions() paths.SnippetFileOptions {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return paths.SnippetFileOptions{
		ExplicitPath:     c.SnippetFilePath,
		FolderOverride:   c.SnippetFolder,
		FileNameOverride: c.SnippetFileName,
	}
}

// GetSortMode returns the snippet sort mode, defaulting to "custom"
func (c *Config) GetSortMode() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.SortMode == "" {
		return SortModeCustom
	}
	return c.SortMode
}

// SetSortMode sets the snippet sort mode
func (c *Config) SetSortMode(mode string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.SortMode = mode
}

// GetSortDirection returns the snippet sort direction, defaulting to "asc"
func (c *Config) GetSortDirection() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.SortDirection == "" {
		return SortAscending
	}
	return c.SortDirection
}

// SetSortDirection sets the snippet sort direction
func (c *Config) SetSortDirection(direction string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.SortDirection = direction
}

// GetHideBlankSnippets returns whether blank snippets are hidden from the list
func (c *Config) GetHideBlankSnippets() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.HideBlankSnippets
}

// SetHideBlankSnippets sets whether blank snippets are hidden from the list
func (c *Config) SetHideBlankSnippets(hide bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.HideBlankSnippets = hide
}

// GetTheme returns the current theme name
func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Theme
}

// SetTheme sets the current theme name
func (c *Config) SetTheme(theme string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Theme = theme
}

// HasSeenWelcome returns whether the welcome modal has been shown
func (c *Config) HasSeenWelcome() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.WelcomeShown
}

// MarkWelcomeShown marks the welcome modal as shown
func (c *Config) MarkWelcomeShown() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.WelcomeShown = true
}

// GetLastSeenVersion returns the last version the user has seen
func (c *Config) GetLastSeenVersion() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.LastSeenVersion
}

// SetLastSeenVersion sets the last version the user has seen
func (c *Config) SetLastSeenVersion(version string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.LastSeenVersion = version
}
