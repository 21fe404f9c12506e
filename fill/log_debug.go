//go:build debug

package fill

import (
	"log"
	"os"
)

// Debug logger instance
var logger = log.New(os.Stderr, "[lyon DEBUG] ", log.LstdFlags)

// logDebugf logs debug messages if the logger is enabled.
func logDebugf(format string, v ...interface{}) {
	logger.Printf(format, v...)
}
