package filefinderservice

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

type FileFinderService interface {
	FindFiles(root string, extension string, skipList []string) ([]string, error)
}

type FileFinder struct{}

func NewFileFinder() *FileFinder {
	return &FileFinder{}
}

// compiledPattern keeps the source pattern next to its glob for the
// root-level fallback in matches.
type compiledPattern struct {
	pattern string
	glob    glob.Glob
}

// FindFiles walks root recursively and returns every file whose extension
// matches, in lexical order. Skip-list entries are globs matched against the
// slash separated path relative to root; a matching directory is not descended.
// Directories that cannot be read are skipped.
func (f *FileFinder) FindFiles(root string, extension string, skipList []string) ([]string, error) {
	patterns, err := compileSkipList(skipList)
	if err != nil {
		return nil, err
	}

	files := []string{}
	walkErr := filepath.WalkDir(root, func(path string, dir fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return fmt.Errorf("error walking dir: %w", err)
			}
			if dir != nil && dir.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if path == root {
			return nil
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		if matches(filepath.ToSlash(relPath), patterns) {
			if dir.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if !dir.IsDir() && strings.EqualFold(filepath.Ext(path), extension) {
			files = append(files, path)
		}

		return nil
	})

	if walkErr != nil {
		return nil, walkErr
	}

	return files, nil
}

func compileSkipList(skipList []string) ([]compiledPattern, error) {
	var patterns []compiledPattern
	for _, pattern := range skipList {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}

		g, err := glob.Compile(filepath.ToSlash(pattern), '/')
		if err != nil {
			return nil, fmt.Errorf("invalid skip pattern %q: %w", pattern, err)
		}
		patterns = append(patterns, compiledPattern{pattern: pattern, glob: g})
	}
	return patterns, nil
}

// matches also accepts a bare name ("bin") for any path segment, so plain
// directory names work the way users expect.
func matches(relPath string, patterns []compiledPattern) bool {
	name := relPath[strings.LastIndex(relPath, "/")+1:]

	for _, cp := range patterns {
		if cp.glob.Match(relPath) {
			return true
		}
		if !strings.Contains(cp.pattern, "/") && cp.glob.Match(name) {
			return true
		}
	}

	return false
}
