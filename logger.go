package opendart

import (
	"sync/atomic"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var pkgLogger atomic.Pointer[zerolog.Logger]

func init() {
	l := log.Logger.Level(zerolog.InfoLevel)
	pkgLogger.Store(&l)
}

// SetLogger replaces the logger used for request and error lines. The default
// writes like zerolog's global logger but drops debug lines; pass a debug-level
// logger to see them.
func SetLogger(l zerolog.Logger) {
	pkgLogger.Store(&l)
}

func currentLogger() *zerolog.Logger {
	return pkgLogger.Load()
}
