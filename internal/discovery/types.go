package discovery

import "time"

// ScriptFile represents a SQL script discovered during filesystem traversal
type ScriptFile struct {
	Path         string    // Absolute path to file
	RelativePath string    // Path relative to search root
	ModTime      time.Time // Last modification time
}
