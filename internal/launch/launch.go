// Package launch turns the selection produced by the TUI (or a CLI
// argument) into the shell command printed on stdout, cloning or creating
// the target directory first when needed.
package launch

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// IsGitURL reports whether the selection looks like a clonable repository
// reference rather than a workspace name.
func IsGitURL(s string) bool {
	return strings.HasPrefix(s, "http://") ||
		strings.HasPrefix(s, "https://") ||
		strings.HasPrefix(s, "git@") ||
		strings.HasPrefix(s, "ssh://") ||
		strings.HasSuffix(s, ".git")
}

// RepoName extracts the directory name to clone into, e.g.
// "github.com/tobi/try.git" -> "try". Falls back to a generic name when the
// URL has no usable last segment.
func RepoName(url string) string {
	clean := strings.TrimRight(url, "/")
	clean = strings.TrimSuffix(clean, ".git")

	if i := strings.LastIndexAny(clean, "/:"); i >= 0 {
		clean = clean[i+1:]
	}
	if clean == "" {
		return "cloned-repo"
	}
	return clean
}

// Clone runs git clone into dest. Git's progress output goes to stderr so
// it shows through the shell wrapper; stdout stays clean for the final
// command.
func Clone(url, dest string, shallow bool) error {
	args := []string{"clone"}
	if shallow {
		args = append(args, "--depth", "1")
	}
	args = append(args, url, dest, "--recurse-submodules", "--no-single-branch")

	cmd := exec.Command("git", args...)
	cmd.Stdout = io.Discard
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("git clone %s: %w", url, err)
	}
	return nil
}

// Command builds the single line the calling shell evaluates: an editor
// invocation when requested and configured, otherwise a cd.
func Command(path, editor string, openEditor bool) string {
	if openEditor && editor != "" {
		return fmt.Sprintf("%s '%s'", editor, path)
	}
	return fmt.Sprintf("cd '%s'", path)
}
