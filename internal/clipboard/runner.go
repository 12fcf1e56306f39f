package clipboard

import (
	"bytes"
	"os/exec"
)

// runner is the single seam through which external tools are spawned, so
// that the cascade and verifier can be exercised in tests without real
// subprocesses.
type runner interface {
	// run spawns tool with args, feeds stdin to the child's input, discards
	// its output, and waits for exit. A non-zero exit status is an error
	// carrying the exit code.
	run(tool string, args []string, stdin []byte) error

	// output spawns tool with args, no input, and returns captured stdout.
	output(tool string, args []string) ([]byte, error)
}

// execRunner runs tools via os/exec. The child's stdin pipe is closed and
// its exit status collected before run returns, so no pipe or process handle
// outlives a single cascade step.
type execRunner struct{}

func (execRunner) run(tool string, args []string, stdin []byte) error {
	cmd := exec.Command(tool, args...)
	cmd.Stdin = bytes.NewReader(stdin)
	return cmd.Run()
}

func (execRunner) output(tool string, args []string) ([]byte, error) {
	return exec.Command(tool, args...).Output()
}
