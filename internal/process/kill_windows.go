//go:build windows

// Package process terminates the browser process trees started for PDF output.
package process

import (
	"os/exec"
	"strconv"
)

// KillProcessGroup force-kills pid and its children with taskkill /T.
// PIDs below 2 are ignored.
func KillProcessGroup(pid int) {
	if pid < 2 {
		return
	}
	// Errors ignored: the tree may already be gone and launcher.Kill follows.
	_ = exec.Command("taskkill", "/F", "/T", "/PID", strconv.Itoa(pid)).Run() // #nosec G204 -- pid is numeric
}
