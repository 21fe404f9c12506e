//go:build !debug

package fill

// logDebugf is a no-op unless the build uses the debug tag.
func logDebugf(string, ...interface{}) {}
