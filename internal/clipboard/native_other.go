//go:build !darwin && !windows

package clipboard

// No OS-native command-line clipboard tools outside macOS and Windows.
func nativeCandidates() []Candidate { return nil }
