//go:build windows

package ansi

import (
	"fmt"
	"syscall"
	"unsafe"
)

// EnableVirtualTerminal turns on VT processing for the Windows console
// attached to stdout so style directives render instead of printing raw.
func EnableVirtualTerminal() error {
	kernel32, err := syscall.LoadDLL("kernel32.dll")
	if err != nil {
		return fmt.Errorf("load kernel32.dll: %w", err)
	}

	getStdHandle, err := kernel32.FindProc("GetStdHandle")
	if err != nil {
		return fmt.Errorf("find GetStdHandle: %w", err)
	}
	getConsoleMode, err := kernel32.FindProc("GetConsoleMode")
	if err != nil {
		return fmt.Errorf("find GetConsoleMode: %w", err)
	}
	setConsoleMode, err := kernel32.FindProc("SetConsoleMode")
	if err != nil {
		return fmt.Errorf("find SetConsoleMode: %w", err)
	}

	const stdOutputHandle = ^uintptr(11) + 1 // -11
	const enableVirtualTerminalProcessing uint32 = 0x0004

	hConsole, _, _ := getStdHandle.Call(stdOutputHandle)
	if hConsole == 0 || hConsole == uintptr(syscall.InvalidHandle) {
		return fmt.Errorf("GetStdHandle failed: %w", syscall.GetLastError())
	}

	var mode uint32
	if ret, _, _ := getConsoleMode.Call(hConsole, uintptr(unsafe.Pointer(&mode))); ret == 0 {
		return fmt.Errorf("GetConsoleMode failed: %w", syscall.GetLastError())
	}
	if mode&enableVirtualTerminalProcessing != 0 {
		return nil
	}
	if ret, _, _ := setConsoleMode.Call(hConsole, uintptr(mode|enableVirtualTerminalProcessing)); ret == 0 {
		return fmt.Errorf("SetConsoleMode failed to enable VT processing: %w", syscall.GetLastError())
	}
	return nil
}
