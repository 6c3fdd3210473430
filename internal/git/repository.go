package git

import (
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// FindRepositoryRoot walks upward from start looking for a .git entry and
// returns the directory holding it. A .git file pointing elsewhere (a
// linked worktree or submodule) counts as a repository.
func FindRepositoryRoot(fs afero.Fs, start string) (string, bool) {
	if start == "" {
		return "", false
	}
	current := filepath.Clean(start)
	for {
		if _, err := fs.Stat(filepath.Join(current, ".git")); err == nil {
			return current, true
		}
		parent := filepath.Dir(current)
		if parent == current {
			return "", false
		}
		current = parent
	}
}

// GitDir resolves the git directory of a repository root, following the
// "gitdir:" indirection used by worktrees.
func GitDir(fs afero.Fs, root string) string {
	gitPath := filepath.Join(root, ".git")
	info, err := fs.Stat(gitPath)
	if err != nil || info.IsDir() {
		return gitPath
	}
	content, err := afero.ReadFile(fs, gitPath)
	if err != nil {
		return gitPath
	}
	contentStr := strings.TrimSpace(string(content))
	if !strings.HasPrefix(contentStr, "gitdir:") {
		return gitPath
	}
	dir := strings.TrimSpace(strings.TrimPrefix(contentStr, "gitdir:"))
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(root, dir)
	}
	return dir
}

// In-progress operations, detected from marker files in the git directory.
const (
	OpMerging       = "MERGING"
	OpRebasing      = "REBASING"
	OpCherryPicking = "CHERRY-PICKING"
	OpReverting     = "REVERTING"
	OpBisecting     = "BISECTING"
)

var operationMarkers = []struct {
	path string
	op   string
}{
	{"rebase-merge", OpRebasing},
	{"rebase-apply", OpRebasing},
	{"MERGE_HEAD", OpMerging},
	{"CHERRY_PICK_HEAD", OpCherryPicking},
	{"REVERT_HEAD", OpReverting},
	{"BISECT_LOG", OpBisecting},
}

// Operation reports the in-progress operation of the repository at root,
// or "" when none.
func Operation(fs afero.Fs, root string) string {
	gitDir := GitDir(fs, root)
	for _, m := range operationMarkers {
		if ok, _ := afero.Exists(fs, filepath.Join(gitDir, m.path)); ok {
			return m.op
		}
	}
	return ""
}
