// Package shared holds helpers used by more than one package's tests.
// The testutil subpackage captures slog output so tests can assert on
// log records and their attributes.
package shared
