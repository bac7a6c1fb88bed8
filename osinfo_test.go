package main

import (
	goruntime "runtime"
	"testing"
)

func TestPlatformName(t *testing.T) {
	cases := map[string]string{
		"darwin":  "macos",
		"windows": "windows",
		"linux":   "linux",
		"android": "android",
		"ios":     "ios",
	}
	for in, want := range cases {
		if got := platformName(in); got != want {
			t.Fatalf("platformName(%q) = %q; want %q", in, got, want)
		}
	}
}

func TestArchName(t *testing.T) {
	cases := map[string]string{
		"amd64":   "x86_64",
		"386":     "x86",
		"arm64":   "aarch64",
		"riscv64": "riscv64",
	}
	for in, want := range cases {
		if got := archName(in); got != want {
			t.Fatalf("archName(%q) = %q; want %q", in, got, want)
		}
	}
}

func TestNormalizeLocale(t *testing.T) {
	cases := map[string]string{
		"en_US.UTF-8":      "en-US",
		"de_DE@euro":       "de-DE",
		"zh_CN.GB18030":    "zh-CN",
		"fr":               "fr",
		"C":                "",
		"POSIX":            "",
		"pt_BR.UTF-8@test": "pt-BR",
	}
	for in, want := range cases {
		if got := normalizeLocale(in); got != want {
			t.Fatalf("normalizeLocale(%q) = %q; want %q", in, got, want)
		}
	}
}

func TestLocaleFromEnvPrecedence(t *testing.T) {
	env := map[string]string{"LANG": "en_GB.UTF-8", "LC_MESSAGES": "nl_NL.UTF-8"}
	if got := localeFromEnv(func(k string) string { return env[k] }); got != "nl-NL" {
		t.Fatalf("locale = %q; want nl-NL", got)
	}
	env["LC_ALL"] = "ja_JP.UTF-8"
	if got := localeFromEnv(func(k string) string { return env[k] }); got != "ja-JP" {
		t.Fatalf("locale = %q; want ja-JP", got)
	}
	if got := localeFromEnv(func(string) string { return "" }); got != "" {
		t.Fatalf("locale = %q; want empty", got)
	}
}

func TestOSInfo(t *testing.T) {
	info := NewOSInfo()
	if got, want := info.Platform(), platformName(goruntime.GOOS); got != want {
		t.Fatalf("Platform() = %q; want %q", got, want)
	}
	wantFamily := "unix"
	wantExt := ""
	if goruntime.GOOS == "windows" {
		wantFamily = "windows"
		wantExt = "exe"
	}
	if info.Family() != wantFamily {
		t.Fatalf("Family() = %q; want %q", info.Family(), wantFamily)
	}
	if info.ExeExtension() != wantExt {
		t.Fatalf("ExeExtension() = %q; want %q", info.ExeExtension(), wantExt)
	}
	if info.Arch() == "" {
		t.Fatal("Arch() empty")
	}
	if goruntime.GOOS == "linux" && info.Version() == "" {
		t.Fatal("Version() empty on linux")
	}
}
