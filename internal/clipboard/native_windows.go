//go:build windows

package clipboard

// clip.exe sets CF_UNICODETEXT from stdin; Set-Clipboard is the slower
// PowerShell equivalent for hosts where clip.exe is missing from PATH.
func nativeCandidates() []Candidate {
	return []Candidate{
		{Tool: "clip.exe", Applies: anywhere},
		{
			Tool:      "powershell",
			WriteArgs: []string{"-NoProfile", "-Command", "Set-Clipboard"},
			Applies:   anywhere,
		},
	}
}
