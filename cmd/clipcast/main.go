// clipcast: put text on the system clipboard, whatever the desktop is.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"clipcast/internal/logging"
)

// Version is set at build time via -ldflags "-X main.Version=x.y.z".
var Version = "dev"

func main() {
	root := &cobra.Command{
		Use:   "clipcast",
		Short: "Cascading clipboard writer",
		Long: `clipcast reads text and places it on the system clipboard, trying a
cascade of backends until one verifiably succeeds:

  wl-copy (Wayland) -> xclip -> xsel (X11/XWayland) -> OS-native tools ->
  in-process clipboard library

Where a backend has a paired read tool the write is verified by reading the
clipboard back; a write that provably left the clipboard empty is not
trusted. Missing or failing backends are skipped with a warning, never
fatally.

Config file search order (first found wins):
  /etc/clipcast/clipcast.toml
  $HOME/.config/clipcast/clipcast.toml
  path supplied via --config

All flags can be set via CLIPCAST_<FLAG> env vars or config-file keys.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newCopyCmd(),
		newEnvCmd(),
		newVersionCmd(),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("clipcast %s\n", Version)
		},
	}
}

// resolveLogging sets up the global slog logger after flags are parsed.
func resolveLogging(formatStr, levelStr string) {
	logging.Setup(logging.ParseFormat(formatStr), logging.ParseLevel(levelStr))
}
