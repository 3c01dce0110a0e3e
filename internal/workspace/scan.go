package workspace

import (
	"os"
	"path/filepath"
	"sort"
	"time"
)

// Scan enumerates the immediate child directories of root and returns them
// ordered most-recently-modified first. Entries whose metadata cannot be
// read are skipped; the scan itself never fails.
func Scan(root string) []Entry {
	var entries []Entry

	dirents, err := os.ReadDir(root)
	if err != nil {
		return entries
	}

	for _, d := range dirents {
		if !d.IsDir() {
			continue
		}
		info, err := d.Info()
		if err != nil {
			continue
		}
		path := filepath.Join(root, d.Name())
		entries = append(entries, Entry{
			Name:     d.Name(),
			Modified: info.ModTime(),
			Created:  createdTime(path, info.ModTime()),
			Markers:  probeMarkers(path),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Modified.After(entries[j].Modified)
	})

	return entries
}

// createdTime returns the directory's birth time where the platform exposes
// one, and the modification time otherwise. Never an error.
func createdTime(path string, modified time.Time) time.Time {
	if bt, ok := birthTime(path); ok {
		return bt
	}
	return modified
}
