//go:build sweepdebug

package sweep

import (
	"log"
	"os"
)

var logger = log.New(os.Stderr, "[sweep DEBUG] ", log.LstdFlags)

// logf writes a debug trace line. Only compiled in when built with
// -tags sweepdebug, keeping the hot sweep loop free of logging overhead in
// normal builds.
func logf(format string, v ...interface{}) {
	logger.Printf(format, v...)
}
