package worksheet

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// SerializerFor returns the serializer registered for path's extension.
func SerializerFor(path string) (Serializer, error) {
	ext := strings.ToLower(filepath.Ext(path))
	s, ok := DefaultSerializers()[ext]
	if !ok {
		return nil, fmt.Errorf("unsupported worksheet format %q", ext)
	}
	return s, nil
}

// Load reads and parses a worksheet file. Sheets without a title are named
// after the file.
func Load(path string) (*Sheet, error) {
	s, err := SerializerFor(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet, err := s.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	sheet.Path = path
	if sheet.Title == "" {
		sheet.Title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return sheet, nil
}

// Save writes sheet to path in the format implied by its extension.
func Save(path string, sheet Sheet) error {
	s, err := SerializerFor(path)
	if err != nil {
		return err
	}

	data, err := s.Serialize(sheet)
	if err != nil {
		return err
	}
	return writeFileAtomic(path, data, 0644)
}

// Discover returns the worksheet files under root matching the doublestar
// pattern, sorted. A root that is itself a file is returned as is.
func Discover(root, pattern string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{root}, nil
	}

	matches, err := doublestar.Glob(os.DirFS(root), pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}

	paths := make([]string, 0, len(matches))
	for _, m := range matches {
		if _, err := SerializerFor(m); err != nil {
			continue
		}
		paths = append(paths, filepath.Join(root, filepath.FromSlash(m)))
	}
	sort.Strings(paths)
	return paths, nil
}

// Expand resolves command-line targets into worksheet paths. Directories are
// searched with pattern, glob expressions are expanded and plain files are
// kept. Duplicates are removed.
func Expand(targets []string, pattern string) ([]string, error) {
	seen := make(map[string]bool)
	var paths []string
	add := func(list []string) {
		for _, p := range list {
			if !seen[p] {
				seen[p] = true
				paths = append(paths, p)
			}
		}
	}

	for _, target := range targets {
		if strings.ContainsAny(target, "*?[{") {
			matches, err := doublestar.FilepathGlob(target, doublestar.WithFilesOnly())
			if err != nil {
				return nil, fmt.Errorf("invalid pattern %q: %w", target, err)
			}
			sort.Strings(matches)
			add(matches)
			continue
		}

		found, err := Discover(target, pattern)
		if err != nil {
			return nil, err
		}
		add(found)
	}
	return paths, nil
}

// Matches reports whether path, relative to root, is a worksheet selected by pattern.
func Matches(root, path, pattern string) bool {
	if _, err := SerializerFor(path); err != nil {
		return false
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	ok, err := doublestar.Match(pattern, filepath.ToSlash(rel))
	return err == nil && ok
}
