package cli

import (
	"bytes"
	"fmt"
	"os"
	"sync"
)

var logMu sync.Mutex

// Logf is a minimal printf-style debug logger. It appends formatted output to
// the file specified by the LINDIFF_LOG_FILE environment variable.
//
// If LINDIFF_LOG_FILE is unset/empty or the path can't be opened as a file,
// Logf is a no-op.
func Logf(format string, args ...any) {
	path := os.Getenv("LINDIFF_LOG_FILE")
	if path == "" {
		return
	}

	// Serialize open/write/close to reduce interleaving within a single process.
	logMu.Lock()
	defer logMu.Unlock()

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()

	var b bytes.Buffer
	_, _ = fmt.Fprintf(&b, format, args...)
	if b.Len() == 0 || b.Bytes()[b.Len()-1] != '\n' {
		_ = b.WriteByte('\n')
	}
	_, _ = f.Write(b.Bytes())
}
