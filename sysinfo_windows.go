//go:build windows

package main

import (
	"fmt"
	"os"

	"golang.org/x/sys/windows"
)

func osVersion() (string, error) {
	v := windows.RtlGetVersion()
	if v == nil {
		return "", fmt.Errorf("RtlGetVersion returned nil")
	}
	return fmt.Sprintf("%d.%d.%d", v.MajorVersion, v.MinorVersion, v.BuildNumber), nil
}

func systemLocale() string {
	langs, err := windows.GetUserPreferredUILanguages(windows.MUI_LANGUAGE_NAME)
	if err == nil && len(langs) > 0 {
		return langs[0]
	}
	return localeFromEnv(os.Getenv)
}
