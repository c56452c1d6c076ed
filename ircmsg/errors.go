package ircmsg

import "fmt"

// ParseError is returned by Parse when a line cannot be turned into a
// Message at all (as opposed to being accepted as an Unknown command).
type ParseError struct {
	Reason string
	Line   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("ircmsg: %s: %q", e.Reason, e.Line)
}

// Sentinel reasons used by Parse; tests match on these by asserting the
// error to *ParseError and comparing its Reason rather than by value
// identity, since each occurrence carries the offending line.
const (
	ReasonInteriorCRLF  = "line contains an interior CR or LF"
	ReasonEmptyLine     = "line is empty after trimming leading spaces"
	ReasonNoCommand     = "line has no command token"
	ReasonInvalidParams = "command parameters are invalid"
)

// BuildError is returned by a Message's client-emit validation when the
// command cannot legally be sent by a client.
type BuildError struct {
	Reason string
}

func (e *BuildError) Error() string {
	return "ircmsg: " + e.Reason
}

var (
	// ErrClientMustNotSendSource is returned when building a message with
	// a non-empty Source: only servers prefix messages with a source.
	ErrClientMustNotSendSource = &BuildError{Reason: "client must not send a source prefix"}

	// ErrClientMayNotEmitServerOnly is returned when attempting to
	// serialize a command that only a server may send (Error, Numeric).
	ErrClientMayNotEmitServerOnly = &BuildError{Reason: "client may not emit a server-only command"}

	// ErrInvalidParams is returned when a command's parameters would
	// serialize to a malformed line (a PRIVMSG or NOTICE with no targets),
	// or when the command is not a known Command type.
	ErrInvalidParams = &BuildError{Reason: "command parameters are invalid for serialization"}

	// ErrMissingParams is returned when a required parameter is empty
	// (e.g. NICK with an empty nickname).
	ErrMissingParams = &BuildError{Reason: "command is missing a required parameter"}
)
