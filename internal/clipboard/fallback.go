package clipboard

import (
	"fmt"

	libclip "golang.design/x/clipboard"
)

// libraryWrite is the last-resort backend: the in-process clipboard library.
// It has the broadest platform coverage but the least reliable behaviour on
// Linux desktops, which is why every external tool is tried before it.
// Init is the step that can fail (no display connection, missing X11
// libraries); its error is surfaced as-is with no retry.
func libraryWrite(text string) error {
	if err := libclip.Init(); err != nil {
		return fmt.Errorf("clipboard library init: %w", err)
	}
	libclip.Write(libclip.FmtText, []byte(text))
	return nil
}
