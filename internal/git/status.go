// Package git summarizes the state of a working tree for the prompt.
package git

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedStatus is returned when git status output cannot be parsed.
var ErrMalformedStatus = errors.New("malformed git status")

// Status summarizes a working tree.
type Status struct {
	Branch     string
	HasRemote  bool
	Ahead      uint
	Behind     uint
	Staged     uint
	Unstaged   uint
	Untracked  uint
	Conflicted uint
	// Operation names an in-progress merge, rebase or similar; empty when
	// none is running.
	Operation string
}

// IsDirty reports whether any file is staged, unstaged, untracked or
// conflicted.
func (s Status) IsDirty() bool {
	return s.Staged+s.Unstaged+s.Untracked+s.Conflicted > 0
}

const shortOIDLength = 7

// ParseStatus parses NUL-terminated output of
// "git status --porcelain=v2 --branch -z".
func ParseStatus(out []byte) (Status, error) {
	var (
		st   Status
		head string
		oid  string
	)

	records := strings.Split(string(out), "\x00")
	for i := 0; i < len(records); i++ {
		rec := records[i]
		if rec == "" {
			continue
		}

		switch rec[0] {
		case '#':
			key, value, _ := strings.Cut(strings.TrimPrefix(rec, "# "), " ")
			switch key {
			case "branch.head":
				head = value
			case "branch.oid":
				oid = value
			case "branch.upstream":
				st.HasRemote = true
			case "branch.ab":
				ahead, behind, err := parseAheadBehind(value)
				if err != nil {
					return Status{}, err
				}
				st.Ahead, st.Behind = ahead, behind
			}
		case '1', '2':
			xy, err := entryXY(rec)
			if err != nil {
				return Status{}, err
			}
			if xy[0] != '.' {
				st.Staged++
			}
			if xy[1] != '.' {
				st.Unstaged++
			}
			if rec[0] == '2' {
				// Renames and copies carry the original path as the next record.
				i++
			}
		case 'u':
			st.Conflicted++
		case '?':
			st.Untracked++
		case '!':
		default:
			return Status{}, fmt.Errorf("%w: unexpected record %q", ErrMalformedStatus, rec)
		}
	}

	switch {
	case head == "(detached)" && oid != "" && oid != "(initial)":
		st.Branch = oid[:min(len(oid), shortOIDLength)]
	case head != "" && head != "(detached)":
		st.Branch = head
	default:
		st.Branch = "HEAD"
	}
	return st, nil
}

func entryXY(rec string) (string, error) {
	fields := strings.SplitN(rec, " ", 3)
	if len(fields) < 3 || len(fields[1]) != 2 {
		return "", fmt.Errorf("%w: short entry %q", ErrMalformedStatus, rec)
	}
	return fields[1], nil
}

func parseAheadBehind(value string) (uint, uint, error) {
	fields := strings.Fields(value)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: branch.ab %q", ErrMalformedStatus, value)
	}
	ahead, err := strconv.ParseUint(strings.TrimPrefix(fields[0], "+"), 10, 0)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: branch.ab %q: %w", ErrMalformedStatus, value, err)
	}
	behind, err := strconv.ParseUint(strings.TrimPrefix(fields[1], "-"), 10, 0)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: branch.ab %q: %w", ErrMalformedStatus, value, err)
	}
	return uint(ahead), uint(behind), nil
}
