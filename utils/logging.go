package utils

import (
	"io"
	"log"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// NewLogger builds the diagnostic logger. With a log file set, output goes to a
// rotating file; verbose adds stderr. Without either, diagnostics are discarded.
func NewLogger(logFile string, verbose bool) *log.Logger {
	var writers []io.Writer

	if logFile != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    10, // MB
			MaxBackups: 2,
			MaxAge:     28, // days
			Compress:   true,
		})
	}

	if verbose {
		writers = append(writers, os.Stderr)
	}

	if len(writers) == 0 {
		return log.New(io.Discard, "", 0)
	}

	return log.New(io.MultiWriter(writers...), "dupefinder: ", log.Ldate|log.Ltime|log.Lshortfile)
}
