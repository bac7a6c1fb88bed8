package main

import (
	"context"
	"os"
	goruntime "runtime"
	"strings"
)

// OSInfo exposes operating system metadata to the front end.
// Methods are reachable as window.go.main.OSInfo.
type OSInfo struct{}

func NewOSInfo() *OSInfo { return &OSInfo{} }

// osCapability registers OSInfo with the front end. It has no lifecycle.
type osCapability struct {
	info *OSInfo
}

func newOSCapability() *osCapability { return &osCapability{info: NewOSInfo()} }

func (c *osCapability) Name() string                                       { return CapabilityOS }
func (c *osCapability) Bindings() []interface{}                            { return []interface{}{c.info} }
func (c *osCapability) Startup(ctx context.Context, app *DesktopApp) error { return nil }
func (c *osCapability) Shutdown()                                          {}

// Platform returns windows, macos, linux, ios, android, freebsd, ...
func (o *OSInfo) Platform() string {
	return platformName(goruntime.GOOS)
}

// Family returns "windows" or "unix".
func (o *OSInfo) Family() string {
	if goruntime.GOOS == "windows" {
		return "windows"
	}
	return "unix"
}

func (o *OSInfo) Arch() string {
	return archName(goruntime.GOARCH)
}

// Version returns the kernel or OS release, empty if unknown.
func (o *OSInfo) Version() string {
	v, err := osVersion()
	if err != nil {
		Log.Warn("os version lookup failed", "error", err)
		return ""
	}
	return v
}

func (o *OSInfo) Hostname() string {
	h, err := os.Hostname()
	if err != nil {
		return ""
	}
	return h
}

// Locale returns a BCP-47 tag such as "en-US", empty if unknown.
func (o *OSInfo) Locale() string {
	return systemLocale()
}

// ExeExtension returns the executable suffix without the dot.
func (o *OSInfo) ExeExtension() string {
	if goruntime.GOOS == "windows" {
		return "exe"
	}
	return ""
}

func platformName(goos string) string {
	if goos == "darwin" {
		return "macos"
	}
	return goos
}

func archName(goarch string) string {
	switch goarch {
	case "amd64":
		return "x86_64"
	case "386":
		return "x86"
	case "arm64":
		return "aarch64"
	default:
		return goarch
	}
}

// localeFromEnv reads POSIX locale variables in precedence order.
func localeFromEnv(getenv func(string) string) string {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := getenv(key); v != "" {
			return normalizeLocale(v)
		}
	}
	return ""
}

// normalizeLocale turns "en_US.UTF-8@euro" into "en-US".
func normalizeLocale(v string) string {
	if i := strings.IndexAny(v, ".@"); i >= 0 {
		v = v[:i]
	}
	if v == "C" || v == "POSIX" {
		return ""
	}
	return strings.ReplaceAll(v, "_", "-")
}
