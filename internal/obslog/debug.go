//go:build !debug

package obslog

// Verbose controls debug output. const false lets the compiler
// dead-code-eliminate every `if Verbose { ... }` block in release builds.
const Verbose = false

// Printf is a no-op unless the binary is built with `-tags debug`.
func Printf(format string, args ...interface{}) {}
