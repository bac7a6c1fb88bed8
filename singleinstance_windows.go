//go:build windows

package main

import (
	"errors"
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32dll        = windows.NewLazySystemDLL("User32.dll")
	pFindWindowW     = user32dll.NewProc("FindWindowW")
	pSetFGWindow     = user32dll.NewProc("SetForegroundWindow")
	pShowWindow      = user32dll.NewProc("ShowWindow")
	pIsWindowVisible = user32dll.NewProc("IsWindowVisible")
	pIsIconic        = user32dll.NewProc("IsIconic")
)

// ensureSingleInstance checks that no other OhMyBox instance is running.
// Returns a cleanup function to call on exit, or exits the process if another instance is found.
func ensureSingleInstance() func() {
	name, _ := windows.UTF16PtrFromString("Local\\OhMyBox_SingleInstance")

	handle, err := windows.CreateMutex(nil, false, name)
	if errors.Is(err, windows.ERROR_ALREADY_EXISTS) {
		fmt.Printf("%s is already running\n", appTitle)
		Log.Info("another instance is running, exiting")
		if handle != 0 {
			windows.CloseHandle(handle)
		}
		bringExistingWindowToFront()
		os.Exit(0)
	}
	if err != nil {
		// Without the mutex we cannot tell; carry on rather than refuse to start.
		Log.Warn("create single-instance mutex failed", "error", err)
		return func() {}
	}

	return func() {
		windows.CloseHandle(handle)
	}
}

func findAppWindow() uintptr {
	title, _ := windows.UTF16PtrFromString(appTitle)
	hwnd, _, _ := pFindWindowW.Call(0, uintptr(unsafe.Pointer(title)))
	return hwnd
}

func bringExistingWindowToFront() {
	if hwnd := findAppWindow(); hwnd != 0 {
		const swRestore = 9
		pShowWindow.Call(hwnd, swRestore)
		pSetFGWindow.Call(hwnd)
	}
}

// isAppWindowVisible checks if the main window is visible and not minimized.
func isAppWindowVisible() (visible bool, minimized bool) {
	hwnd := findAppWindow()
	if hwnd == 0 {
		return false, false
	}
	v, _, _ := pIsWindowVisible.Call(hwnd)
	m, _, _ := pIsIconic.Call(hwnd)
	return v != 0, m != 0
}
