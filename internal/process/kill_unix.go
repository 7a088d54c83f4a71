//go:build !windows

// Package process terminates the browser process trees started for PDF output.
package process

import "syscall"

// KillProcessGroup sends SIGKILL to the process group led by pid, which
// takes Chrome's renderer and GPU helpers down with it. PIDs below 2 are
// ignored: -0 and -1 would signal the caller's group or every process.
func KillProcessGroup(pid int) {
	if pid < 2 {
		return
	}
	// Errors ignored: the group may already be gone and launcher.Kill follows.
	_ = syscall.Kill(-pid, syscall.SIGKILL)
}
