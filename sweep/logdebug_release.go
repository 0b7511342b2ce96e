//go:build !sweepdebug

package sweep

// logf is a no-op in normal builds; see logdebug.go for the -tags sweepdebug
// implementation.
func logf(format string, v ...interface{}) {}
