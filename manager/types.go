package manager

import "github.com/zhubert/snipdeck-core/config"

// SortMode selects how Refresh orders the snippet list.
// Using a typed enum instead of the settings-file strings
// provides compile-time safety and clearer code.
type SortMode int

const (
	// SortCustom orders by the user's manual arrangement.
	SortCustom SortMode = iota

	// SortTitle orders alphabetically by title, case-insensitive.
	SortTitle

	// SortCreated orders by creation time.
	SortCreated
)

// String returns the settings-file name for the sort mode.
func (m SortMode) String() string {
	switch m {
	case SortTitle:
		return config.SortModeTitle
	case SortCreated:
		return config.SortModeCreated
	default:
		return config.SortModeCustom
	}
}

// ParseSortMode maps a settings-file value to a SortMode.
// Unknown or empty values fall back to SortCustom.
func ParseSortMode(s string) SortMode {
	switch s {
	case config.SortModeTitle:
		return SortTitle
	case config.SortModeCreated:
		return SortCreated
	default:
		return SortCustom
	}
}

// SortDirection selects ascending or descending order for sorted views.
type SortDirection int

const (
	// SortAscending is the natural order for the active sort mode.
	SortAscending SortDirection = iota

	// SortDescending reverses it.
	SortDescending
)

// String returns the settings-file name for the direction.
func (d SortDirection) String() string {
	if d == SortDescending {
		return config.SortDescending
	}
	return config.SortAscending
}

// ParseSortDirection maps a settings-file value to a SortDirection.
// Unknown or empty values fall back to SortAscending.
func ParseSortDirection(s string) SortDirection {
	if s == config.SortDescending {
		return SortDescending
	}
	return SortAscending
}
