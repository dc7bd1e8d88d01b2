package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// IsScriptPath reports whether path names a SQL script by extension
// (case-insensitive).
func IsScriptPath(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".sql")
}

// Discover recursively finds all SQL scripts in the given directory,
// returned in walk order (lexical within each directory).
func Discover(rootPath string) ([]ScriptFile, error) {
	absRoot, err := filepath.Abs(rootPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("directory not found: %s", absRoot)
		}
		return nil, fmt.Errorf("failed to access directory: %w", err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", absRoot)
	}

	var scripts []ScriptFile

	err = filepath.Walk(absRoot, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			// Skip directories we can't access
			if os.IsPermission(err) {
				return nil
			}
			return err
		}

		if info.IsDir() || !IsScriptPath(path) {
			return nil
		}

		relPath, err := filepath.Rel(absRoot, path)
		if err != nil {
			return fmt.Errorf("failed to get relative path: %w", err)
		}

		scripts = append(scripts, ScriptFile{
			Path:         path,
			RelativePath: relPath,
			ModTime:      info.ModTime(),
		})

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}

	return scripts, nil
}
