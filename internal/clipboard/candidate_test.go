package clipboard

import "testing"

func applicableTools(env Environment) []string {
	var tools []string
	for _, cand := range Candidates() {
		if cand.Applies(env) {
			tools = append(tools, cand.Tool)
		}
	}
	return tools
}

func indexOf(tools []string, tool string) int {
	for i, t := range tools {
		if t == tool {
			return i
		}
	}
	return -1
}

func TestCandidateOrdering(t *testing.T) {
	for _, env := range []Environment{Wayland, X11, Native, Unknown} {
		tools := applicableTools(env)
		if env == Wayland || env == X11 {
			if len(tools) == 0 {
				t.Fatalf("%s: no applicable candidates", env)
			}
		}
		// Protocol-native before generic: wl-copy ahead of the X11 tools,
		// xclip ahead of xsel, wherever they appear together.
		wl, xc, xs := indexOf(tools, "wl-copy"), indexOf(tools, "xclip"), indexOf(tools, "xsel")
		if wl >= 0 && xc >= 0 && wl > xc {
			t.Errorf("%s: wl-copy at %d after xclip at %d", env, wl, xc)
		}
		if xc >= 0 && xs >= 0 && xc > xs {
			t.Errorf("%s: xclip at %d after xsel at %d", env, xc, xs)
		}
	}
}

func TestCandidateApplicability(t *testing.T) {
	tests := []struct {
		tool string
		env  Environment
		want bool
	}{
		{"wl-copy", Wayland, true},
		{"wl-copy", X11, false},
		{"wl-copy", Native, false},
		{"wl-copy", Unknown, false},
		// X11 tools stay applicable under Wayland (XWayland).
		{"xclip", Wayland, true},
		{"xclip", X11, true},
		{"xclip", Native, false},
		{"xclip", Unknown, false},
		{"xsel", Wayland, true},
		{"xsel", X11, true},
		{"xsel", Unknown, false},
	}
	byTool := make(map[string]Candidate)
	for _, cand := range Candidates() {
		byTool[cand.Tool] = cand
	}
	for _, tt := range tests {
		cand, ok := byTool[tt.tool]
		if !ok {
			t.Fatalf("candidate %s missing from cascade", tt.tool)
		}
		if got := cand.Applies(tt.env); got != tt.want {
			t.Errorf("%s applies(%s) = %v, want %v", tt.tool, tt.env, got, tt.want)
		}
	}
}

func TestCandidateSelectionTargets(t *testing.T) {
	// Every X11 argument vector must target the clipboard selection, not
	// primary.
	for _, cand := range Candidates() {
		switch cand.Tool {
		case "xclip":
			if indexOf(cand.WriteArgs, "clipboard") < 0 {
				t.Errorf("xclip write args %v do not name the clipboard selection", cand.WriteArgs)
			}
		case "xsel":
			if indexOf(cand.WriteArgs, "--clipboard") < 0 {
				t.Errorf("xsel write args %v do not name the clipboard selection", cand.WriteArgs)
			}
		}
	}
}
