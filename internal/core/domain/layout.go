package domain

import "time"

const (
	// DateLayout is the layout of every date key in a calendar.
	DateLayout = "2006-01-02"

	// DataFileName is the default name of the persisted calendar.
	DataFileName = "data.json"

	// LockSuffix is appended to the calendar path to name its companion lock file.
	LockSuffix = ".lock"

	// ConfigFileName is the default name of the configuration file.
	ConfigFileName = "workday.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// LockPath returns the path of the lock file guarding the calendar at path.
func LockPath(path string) string {
	return path + LockSuffix
}

// FormatDate formats t as a calendar key.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a calendar key strictly. Keys that do not round-trip
// (for example "2024-2-1") are rejected.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil || t.Format(DateLayout) != s {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}
