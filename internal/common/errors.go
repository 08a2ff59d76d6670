/*
 * Copyright 2024 The rpmkit Authors
 *
 * Licensed under the GNU General Public License, version 3 (or later).
 * See the LICENSE file for details.
 */

// Package common holds the error kinds and small aggregation helpers shared
// by the rpm and cpio packages, plus the diagnostic logger used for the
// handful of tolerated-but-logged paths spec.md calls out explicitly
// (unknown tag id, duplicate tag, skipped chown on non-POSIX hosts).
package common

import (
	"errors"

	"github.com/sirupsen/logrus"
)

// Sentinel error kinds. Wrap one of these with fmt.Errorf("...: %w", ErrX)
// so that callers can use errors.Is to classify a failure per spec.md §7.
// Io failures are propagated verbatim from the underlying io.Reader/Writer
// and are not wrapped in a sentinel of their own.
var (
	// ErrInvalidData means on-wire bytes violate the format.
	ErrInvalidData = errors.New("invalid data")
	// ErrInvalidInput means a caller-supplied value is malformed.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnsupported means a tolerated-but-unimplemented case was hit.
	ErrUnsupported = errors.New("unsupported")
	// ErrNotFound means a required parent path does not exist.
	ErrNotFound = errors.New("not found")
	// ErrPermissionDenied means the host refused a privileged operation.
	ErrPermissionDenied = errors.New("permission denied")
)

// Logger is the package-wide diagnostic logger. Core codec code never logs
// anything it also returns as an error; it is used exclusively for the
// handful of paths spec.md tolerates rather than fails. Callers may replace
// it (e.g. CLI front-ends raise the level on --debug).
var Logger = logrus.StandardLogger()

// ErrorCollector aggregates zero or more errors for display at the end of a
// multi-step operation (e.g. validating every file in a package definition
// before giving up). Adapted from the teacher's errorcollector.go.
type ErrorCollector struct {
	Errors []error
}

// Add appends err to the collector if it is non-nil.
func (c *ErrorCollector) Add(err error) {
	if err != nil {
		c.Errors = append(c.Errors, err)
	}
}

// Any reports whether any error has been collected.
func (c *ErrorCollector) Any() bool {
	return len(c.Errors) > 0
}

// Join returns a single error combining every collected error, or nil if
// none were collected.
func (c *ErrorCollector) Join() error {
	if len(c.Errors) == 0 {
		return nil
	}
	return errors.Join(c.Errors...)
}
