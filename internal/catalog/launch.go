package catalog

import (
	"fmt"
	"os/exec"
	"strings"
	"syscall"

	"github.com/JakeRoggenbuck/hyperfind/internal/models"
)

// Launch starts the given entry's command, detached in its own session so
// it outlives the launcher process. The error carries the app name; a
// failed launch must never take the launcher down.
func Launch(e *models.AppEntry) error {
	command := StripFieldCodes(e.Exec)
	if command == "" {
		return fmt.Errorf("launch %s: empty command", e.Name)
	}

	cmd := exec.Command("sh", "-c", command)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("launch %s: %w", e.Name, err)
	}

	// Let the child run on its own; the launcher exits right after.
	return cmd.Process.Release()
}

// StripFieldCodes removes desktop-entry Exec field codes (%f, %F, %u, %U
// and friends) that only mean something when a file or URL is being passed.
// A literal %% collapses to a single percent.
func StripFieldCodes(execLine string) string {
	var b strings.Builder
	b.Grow(len(execLine))

	for i := 0; i < len(execLine); i++ {
		c := execLine[i]
		if c != '%' || i+1 >= len(execLine) {
			b.WriteByte(c)
			continue
		}
		i++
		if execLine[i] == '%' {
			b.WriteByte('%')
		}
		// Any other field code is dropped.
	}

	return strings.Join(strings.Fields(b.String()), " ")
}
