// control/logging.go
// Author: momentics <momentics@gmail.com>
//
// Logger construction shared by the facade and the CLI.

package control

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogger returns a text logger writing to out (stderr when nil).
// Debug lowers the level so diagnostic messages are emitted.
func NewLogger(out io.Writer, debug bool) *logrus.Logger {
	if out == nil {
		out = os.Stderr
	}
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05.000",
	})
	if debug {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}
	return logger
}
