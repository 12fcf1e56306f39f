package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"clipcast/internal/clipboard"
)

func newEnvCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "env",
		Short: "Show the detected display environment and backend availability",
		Long: `Probes the display environment the same way "clipcast copy" does and
lists every external backend in cascade order with its applicability and
whether its binary is on PATH. The in-process library fallback is listed
last; it is always applicable.`,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(_ *cobra.Command, _ []string) error { return runEnv(v) },
	}

	f := cmd.Flags()
	f.Bool("json", false, "output raw JSON")
	addConfigFlag(cmd)

	return cmd
}

type backendStatus struct {
	Tool       string `json:"tool"`
	Applicable bool   `json:"applicable"`
	Available  bool   `json:"available"`
	ReadBack   bool   `json:"read_back"`
}

func runEnv(v *viper.Viper) error {
	env := clipboard.Probe()

	var backends []backendStatus
	for _, cand := range clipboard.Candidates() {
		_, lookErr := exec.LookPath(cand.Tool)
		backends = append(backends, backendStatus{
			Tool:       cand.Tool,
			Applicable: cand.Applies(env),
			Available:  lookErr == nil,
			ReadBack:   cand.ReadTool != "",
		})
	}
	backends = append(backends, backendStatus{
		Tool:       "library",
		Applicable: true,
		Available:  true,
	})

	if v.GetBool("json") {
		out := struct {
			Environment string          `json:"environment"`
			Backends    []backendStatus `json:"backends"`
		}{env.String(), backends}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Printf("environment: %s\n\n", env)
	tw := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "BACKEND\tAPPLICABLE\tAVAILABLE\tREAD-BACK")
	for _, b := range backends {
		fmt.Fprintf(tw, "%s\t%v\t%v\t%v\n", b.Tool, b.Applicable, b.Available, b.ReadBack)
	}
	return tw.Flush()
}
