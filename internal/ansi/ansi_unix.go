//go:build !windows

package ansi

// EnableVirtualTerminal is a no-op on non-Windows systems; terminal emulators
// there interpret ANSI sequences natively.
func EnableVirtualTerminal() error {
	return nil
}
