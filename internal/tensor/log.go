package tensor

import (
	"log/slog"

	"github.com/born-ml/strided/internal/logutil"
)

// SetLogger installs the logger used for debug diagnostics: copy-on-write
// promotions, reshapes that had to copy and owned copies of strided arrays.
// nil restores the silent default.
func SetLogger(l *slog.Logger) {
	logutil.SetLogger(l)
}

func logger() *slog.Logger {
	return logutil.Logger()
}
