package workspace

import (
	"os"
	"path/filepath"
	"time"
)

// Entry is one candidate workspace directory under the configured root.
type Entry struct {
	Name     string
	Modified time.Time
	Created  time.Time
	Score    int             // fuzzy match score, only meaningful during a ranking pass
	Markers  map[string]bool // marker name -> present
}

// Marker describes a well-known project file probed inside each entry.
// Markers are cosmetic decorations; they never affect ranking or selection.
type Marker struct {
	Name   string
	Icon   string
	Probes []string // entry is flagged if any of these paths exist
}

// Registry is the ordered set of markers probed at scan time. New project
// kinds are added here and picked up by the scan and the list renderer.
var Registry = []Marker{
	{Name: "cargo", Icon: "", Probes: []string{"Cargo.toml"}},
	{Name: "maven", Icon: "", Probes: []string{"pom.xml"}},
	{Name: "flutter", Icon: "", Probes: []string{"pubspec.yaml"}},
	{Name: "go", Icon: "", Probes: []string{"go.mod"}},
	{Name: "python", Icon: "", Probes: []string{"pyproject.toml", "requirements.txt"}},
	{Name: "mise", Icon: "\U000f0b0e", Probes: []string{"mise.toml"}},
	{Name: "git", Icon: "", Probes: []string{".git"}},
}

func probeMarkers(dir string) map[string]bool {
	found := make(map[string]bool, len(Registry))
	for _, m := range Registry {
		for _, p := range m.Probes {
			// Probe failures (permissions, symlink loops) count as absent.
			if _, err := os.Lstat(filepath.Join(dir, p)); err == nil {
				found[m.Name] = true
				break
			}
		}
	}
	return found
}
