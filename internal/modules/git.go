package modules

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Veraticus/powerline/internal/git"
	"github.com/Veraticus/powerline/internal/powerline"
)

const (
	gitBranchIcon = "\ue0a0"
	gitRemoteLogo = "\ue709"
	gitUpArrow    = "\uf062"
	gitDownArrow  = "\uf063"
)

type gitCount struct {
	symbol string
	style  powerline.Style
	count  func(git.Status) uint
}

type gitModule struct {
	env    *Env
	clean  powerline.Style
	dirty  powerline.Style
	remote powerline.Style
	counts []gitCount
}

func newGit(env *Env, opts map[string]any) (powerline.Module, error) {
	if err := noOptions(opts); err != nil {
		return nil, err
	}
	s := env.scope("git")
	style := func(prefix string) powerline.Style {
		return powerline.Simple(s.Fg(prefix+"_fg"), s.Bg(prefix+"_bg"))
	}
	return &gitModule{
		env:    env,
		clean:  style("clean"),
		dirty:  style("dirty"),
		remote: style("remote"),
		counts: []gitCount{
			{
				symbol: s.Symbol("notstaged_symbol", "\ueae9"),
				style:  style("notstaged"),
				count:  func(st git.Status) uint { return st.Unstaged },
			},
			{
				symbol: s.Symbol("untracked_symbol", "?"),
				style:  style("untracked"),
				count:  func(st git.Status) uint { return st.Untracked },
			},
			{
				symbol: s.Symbol("staged_symbol", "+"),
				style:  style("staged"),
				count:  func(st git.Status) uint { return st.Staged },
			},
			{
				symbol: s.Symbol("conflicted_symbol", "\u273c"),
				style:  style("conflicted"),
				count:  func(st git.Status) uint { return st.Conflicted },
			},
		},
	}, nil
}

// Produce adds the branch, the non-zero change counts and the remote
// summary. Outside a repository, or when git fails or times out, nothing
// is added.
func (m *gitModule) Produce(c *powerline.Composer) {
	if m.env.Git == nil {
		return
	}
	root, ok := git.FindRepositoryRoot(m.env.fs(), m.env.dir(false))
	if !ok {
		return
	}

	st, err := m.env.Git.Collect(m.env.ctx(), root)
	if err != nil {
		m.env.log().Debug("git status unavailable", zap.String("root", root), zap.Error(err))
		return
	}

	branch := gitBranchIcon + " " + st.Branch
	if st.Operation != "" {
		branch += "|" + st.Operation
	}
	if st.IsDirty() {
		c.AddSegment(branch, m.dirty)
	} else {
		c.AddSegment(branch, m.clean)
	}

	for _, gc := range m.counts {
		if n := gc.count(st); n > 0 {
			c.AddSegment(fmt.Sprintf("%d %s", n, gc.symbol), gc.style)
		}
	}

	if st.HasRemote {
		c.AddSegment(remoteSummary(st), m.remote)
	}
}

func remoteSummary(st git.Status) string {
	parts := []string{gitRemoteLogo}
	if st.Ahead > 0 {
		parts = append(parts, fmt.Sprintf("%d%s", st.Ahead, gitUpArrow))
	}
	if st.Behind > 0 {
		parts = append(parts, fmt.Sprintf("%d%s", st.Behind, gitDownArrow))
	}
	return strings.Join(parts, " ")
}
