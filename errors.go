// errors.go - Recoverable error types crossing the embedding boundary

/*
invaders - an Intel 8080 Space Invaders arcade emulation core

(c) 2026 gocade contributors
https://github.com/gocade/invaders

License: GPLv3 or later
*/

package invaders

import "fmt"

// InvalidReadPortError is returned by Machine.Step when the running
// program reads a port the arcade board does not wire up. It is
// recoverable: the host may log it and keep running, though it
// usually indicates a corrupt or unsupported ROM.
type InvalidReadPortError struct {
	Port byte
}

func (e *InvalidReadPortError) Error() string {
	return fmt.Sprintf("invaders: invalid read from port 0x%02X", e.Port)
}

// InvalidWritePortError is the write-side counterpart of
// InvalidReadPortError.
type InvalidWritePortError struct {
	Port byte
}

func (e *InvalidWritePortError) Error() string {
	return fmt.Sprintf("invaders: invalid write to port 0x%02X", e.Port)
}
