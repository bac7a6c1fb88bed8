//go:build !windows

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
)

// ensureSingleInstance checks that no other OhMyBox instance is running.
// Returns a cleanup function to call on exit, or exits the process if another instance is found.
func ensureSingleInstance() func() {
	lockPath := filepath.Join(AppDataDir(), "ohmybox.lock")

	if pid, ok := readLockPID(lockPath); ok && pid != os.Getpid() && processAlive(pid) {
		fmt.Printf("%s is already running (pid %d)\n", appTitle, pid)
		Log.Info("another instance is running, exiting", "pid", pid)
		os.Exit(0)
	}

	// Write our PID
	if err := os.WriteFile(lockPath, []byte(strconv.Itoa(os.Getpid())), 0644); err != nil {
		Log.Warn("write lock file failed", "path", lockPath, "error", err)
	}

	return func() {
		os.Remove(lockPath)
	}
}

func readLockPID(lockPath string) (int, bool) {
	data, err := os.ReadFile(lockPath)
	if err != nil {
		return 0, false
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || pid <= 0 {
		return 0, false
	}
	return pid, true
}

// processAlive reports whether pid exists. On Unix, FindProcess always
// succeeds, so signal 0 is the actual probe.
func processAlive(pid int) bool {
	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	return process.Signal(syscall.Signal(0)) == nil
}
