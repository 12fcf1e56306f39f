package clipboard

import (
	"os"
	"runtime"
)

// Environment classifies the display protocol the process is running under.
// Derived fresh on every Probe call, never cached.
type Environment int

const (
	// Unknown means no display indicators and no OS-level clipboard service.
	Unknown Environment = iota
	// Wayland means a Wayland session is present (possibly with XWayland).
	Wayland
	// X11 means an X11 display is present without a Wayland session.
	X11
	// Native means no display indicators on a platform whose OS ships its
	// own clipboard service (macOS, Windows).
	Native
)

func (e Environment) String() string {
	switch e {
	case Wayland:
		return "wayland"
	case X11:
		return "x11"
	case Native:
		return "native"
	default:
		return "unknown"
	}
}

// Probe classifies the current display environment.
//
// A session exposing both Wayland and X11 indicators (XWayland) classifies
// as Wayland; the X11 tools stay applicable there because XWayland exposes
// an X11-compatible clipboard (see Candidates).
func Probe() Environment {
	if os.Getenv("WAYLAND_DISPLAY") != "" || os.Getenv("WAYLAND_SOCKET") != "" {
		return Wayland
	}
	if os.Getenv("DISPLAY") != "" {
		return X11
	}
	if runtime.GOOS == "darwin" || runtime.GOOS == "windows" {
		return Native
	}
	return Unknown
}
