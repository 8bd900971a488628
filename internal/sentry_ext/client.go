// Package sentry_ext reports chartbrush warnings and errors to Sentry.
package sentry_ext

import (
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
)

type Params struct {
	// DSN is the Sentry project DSN. Empty disables reporting.
	DSN string

	// Release is the chartbrush version.
	Release string

	// Commit is the git commit the binary was built from.
	Commit string

	// LRUSize bounds the number of distinct messages remembered for
	// deduplication.
	LRUSize int
}

// Client sends events through its own hub so tags set by one chart do not
// leak into another.
type Client struct {
	hub    *sentry.Hub
	recent *cache
}

// New creates a Sentry client. With an empty DSN the client is disabled
// but safe to use.
func New(params Params) *Client {
	client, err := sentry.NewClient(sentry.ClientOptions{
		Dsn:              params.DSN,
		AttachStacktrace: true,
		Release:          params.Release,
		Dist:             params.Commit,
	})
	if err != nil {
		slog.Error("sentry_ext: New: failed to create client", "err", err)
		return nil
	}

	recent, err := newCache(params.LRUSize)
	if err != nil {
		slog.Error("sentry_ext: New: failed to create cache", "err", err)
		return nil
	}

	return &Client{
		hub:    sentry.NewHub(client, sentry.NewScope()),
		recent: recent,
	}
}

// Enabled reports whether events leave the process.
func (c *Client) Enabled() bool {
	return c != nil && c.hub.Client() != nil && c.hub.Client().Options().Dsn != ""
}

// CaptureException sends err as an error-level event, unless the same
// error was sent recently.
func (c *Client) CaptureException(err error, tags map[string]string) bool {
	if c == nil || err == nil || !c.recent.shouldCapture(err.Error()) {
		return false
	}
	hub := c.hub.Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTags(tags)
	})
	hub.CaptureException(err)
	return true
}

// CaptureMessage sends msg as a warning-level event, unless the same
// message was sent recently.
func (c *Client) CaptureMessage(msg string, tags map[string]string) bool {
	if c == nil || !c.recent.shouldCapture(msg) {
		return false
	}
	hub := c.hub.Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTags(tags)
		scope.SetLevel(sentry.LevelWarning)
	})
	hub.CaptureMessage(msg)
	return true
}

// Flush waits for queued events to be delivered.
func (c *Client) Flush(timeout time.Duration) bool {
	if c == nil {
		return true
	}
	return c.hub.Flush(timeout)
}
