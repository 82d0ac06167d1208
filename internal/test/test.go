// Package test contains assertions shared by minipeg tests.
package test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava12/minipeg"
)

// ExpectErrorCode fails the test unless e is (or wraps) *minipeg.Error with expected code.
func ExpectErrorCode(t testing.TB, expected int, e error) *minipeg.Error {
	t.Helper()
	require.Error(t, e, "expecting error code %d", expected)
	var ee *minipeg.Error
	require.True(t, errors.As(e, &ee), "expecting *minipeg.Error, got %T: %v", e, e)
	require.True(t, minipeg.HasCode(e, expected), "expecting error code %d, got %v", expected, e)
	return ee
}

// ExpectErrorAt fails the test unless e has expected code and offset.
func ExpectErrorAt(t testing.TB, expectedCode, expectedOffset int, e error) *minipeg.Error {
	t.Helper()
	ee := ExpectErrorCode(t, expectedCode, e)
	require.Equal(t, expectedOffset, ee.Offset, "error offset: %v", e)
	return ee
}

// ExpectMissing fails the test unless e is a missing symbol error with expected symbol name and offset.
func ExpectMissing(t testing.TB, code int, expected string, offset int, e error) *minipeg.Error {
	t.Helper()
	ee := ExpectErrorAt(t, code, offset, e)
	require.Equal(t, expected, ee.Expected, "expected symbol: %v", e)
	return ee
}

// NewLogger returns debug logger writing to t.Log().
// Logs only appear on test failure or when running with -v.
func NewLogger(t testing.TB) *slog.Logger {
	t.Helper()
	return slog.New(slog.NewTextHandler(testWriter{t}, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

type testWriter struct {
	t testing.TB
}

func (w testWriter) Write(p []byte) (n int, err error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}
