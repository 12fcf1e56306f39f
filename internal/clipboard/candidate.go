package clipboard

// Candidate describes one external clipboard tool: the argument vector for a
// write invocation and, where the tool has a paired reader, the invocation
// used to read the clipboard back for verification. An empty ReadTool means
// the candidate has no read-back pair and a successful write is trusted
// as-is. All argument vectors target the clipboard selection, never primary.
type Candidate struct {
	Tool      string
	WriteArgs []string
	ReadTool  string
	ReadArgs  []string
	Applies   func(Environment) bool
}

func onWayland(e Environment) bool { return e == Wayland }

// onX11 accepts Wayland sessions too: XWayland exposes an X11-compatible
// clipboard, so the X11 tools are worth a try there even without checking
// for an actual X11 display.
func onX11(e Environment) bool { return e == X11 || e == Wayland }

func anywhere(Environment) bool { return true }

// Candidates returns the cascade in priority order: the compositor-native
// Wayland tool first, then the X11 tools, then whatever OS-native tools this
// platform ships. The order is load-bearing; protocol-native tools integrate
// best with the running compositor and must come before generic ones. The
// in-process library fallback is not a Candidate; the cascade reaches it
// only after every entry here has been skipped or has failed.
func Candidates() []Candidate {
	cs := []Candidate{
		{
			Tool: "wl-copy",
			// Explicit type avoids MIME weirdness; -n avoids trailing
			// newline issues.
			WriteArgs: []string{"--type", "text/plain;charset=utf-8", "-n"},
			ReadTool:  "wl-paste",
			ReadArgs:  []string{"-n"},
			Applies:   onWayland,
		},
		{
			Tool:      "xclip",
			WriteArgs: []string{"-selection", "clipboard"},
			ReadTool:  "xclip",
			ReadArgs:  []string{"-selection", "clipboard", "-o"},
			Applies:   onX11,
		},
		{
			Tool:      "xsel",
			WriteArgs: []string{"--clipboard", "--input"},
			ReadTool:  "xsel",
			ReadArgs:  []string{"--clipboard", "--output"},
			Applies:   onX11,
		},
	}
	return append(cs, nativeCandidates()...)
}
