//go:build !unix && !windows

package main

import (
	"errors"
	"os"
)

func osVersion() (string, error) {
	return "", errors.New("os version not supported on this platform")
}

func systemLocale() string {
	return localeFromEnv(os.Getenv)
}
