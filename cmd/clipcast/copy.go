package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"clipcast/internal/clipboard"
)

func newCopyCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "copy",
		Short: "Copy stdin to the system clipboard (like pbcopy)",
		Long: `Reads stdin and writes it to the system clipboard through the backend
cascade. Individual backend failures are reported as warnings on stderr and
the next backend is tried; the command fails only when every backend,
including the in-process library, has failed.

With --tee the input is also echoed to stdout. In that mode a clipboard
failure downgrades to a warning and the command still exits 0: the output
has been delivered, the clipboard was best-effort.`,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(_ *cobra.Command, _ []string) error { return runCopy(v) },
	}

	f := cmd.Flags()
	f.BoolP("tee", "t", false, "echo stdin to stdout as well as copying it")
	addLoggingFlags(cmd)
	addConfigFlag(cmd)

	return cmd
}

func runCopy(v *viper.Viper) error {
	setupLogging(v)

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}

	tee := v.GetBool("tee")
	if tee {
		if _, err := os.Stdout.Write(data); err != nil {
			return fmt.Errorf("write stdout: %w", err)
		}
	}

	if len(data) == 0 {
		return nil
	}

	if err := clipboard.New().Transmit(string(data)); err != nil {
		if tee {
			slog.Warn("clipboard transmission failed", "err", err)
			return nil
		}
		return err
	}
	return nil
}
