//go:build debug

package obslog

import "fmt"

// Verbose controls debug output, enabled via -tags debug.
const Verbose = true

// Printf prints debug messages when the binary is built with -tags debug.
func Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}
