//go:build unix

package main

import (
	"os"

	"golang.org/x/sys/unix"
)

func osVersion() (string, error) {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return "", err
	}
	return unix.ByteSliceToString(u.Release[:]), nil
}

func systemLocale() string {
	return localeFromEnv(os.Getenv)
}
