package types

import (
	"io"
	"log"
)

// DefaultVersion is the fallback version when AppContext is nil
const DefaultVersion = "dev"

// AppContext holds application-wide context information passed to commands
type AppContext struct {
	Version string
	Logger  *log.Logger
}

// VersionOrDefault returns the version, tolerating a nil context
func (c *AppContext) VersionOrDefault() string {
	if c == nil || c.Version == "" {
		return DefaultVersion
	}
	return c.Version
}

// Log returns the diagnostic logger, never nil
func (c *AppContext) Log() *log.Logger {
	if c == nil || c.Logger == nil {
		return log.New(io.Discard, "", 0)
	}
	return c.Logger
}
