//go:build !windows

package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadLockPID(t *testing.T) {
	dir := t.TempDir()
	cases := []struct {
		content string
		want    int
		ok      bool
	}{
		{"1234", 1234, true},
		{" 42\n", 42, true},
		{"abc", 0, false},
		{"-3", 0, false},
	}
	for i, c := range cases {
		path := filepath.Join(dir, "lock"+string(rune('a'+i)))
		if err := os.WriteFile(path, []byte(c.content), 0644); err != nil {
			t.Fatal(err)
		}
		pid, ok := readLockPID(path)
		if pid != c.want || ok != c.ok {
			t.Fatalf("readLockPID(%q) = %d, %v; want %d, %v", c.content, pid, ok, c.want, c.ok)
		}
	}
	if _, ok := readLockPID(filepath.Join(dir, "missing")); ok {
		t.Fatal("missing lock file reported a pid")
	}
}

func TestProcessAlive(t *testing.T) {
	if !processAlive(os.Getpid()) {
		t.Fatal("own process reported dead")
	}
}

func TestEnsureSingleInstanceWritesAndReleasesLock(t *testing.T) {
	release := ensureSingleInstance()
	lockPath := filepath.Join(AppDataDir(), "ohmybox.lock")
	if pid, ok := readLockPID(lockPath); !ok || pid != os.Getpid() {
		t.Fatalf("lock pid = %d, %v; want %d", pid, ok, os.Getpid())
	}
	release()
	if _, err := os.Stat(lockPath); !os.IsNotExist(err) {
		t.Fatalf("lock file still present: %v", err)
	}
}
