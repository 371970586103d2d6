// Package logging builds the application slog logger.
//
// Two output formats are supported: a human-oriented console format used by
// default, and line-delimited JSON for log shipping. Components attach a
// "component" attribute so console output stays scannable.
package logging
