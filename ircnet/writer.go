package ircnet

import (
	"net"
	"time"

	"github.com/asquared31415/irc-client/ircmsg"
)

// Writer serializes outgoing messages and performs blocking, full-buffer
// writes to the connection. Writes are expected to be serialized by a
// single caller (the reader/writer thread), matching spec.md §4.2.
type Writer struct {
	conn net.Conn
}

// NewWriter wraps conn for serialized blocking writes.
func NewWriter(conn net.Conn) *Writer {
	return &Writer{conn: conn}
}

// Write serializes msg (appending CRLF) and writes the full result to
// the connection, retrying on interruption or a transient would-block
// condition until every byte is sent.
func (w *Writer) Write(msg ircmsg.Message) error {
	line, err := ircmsg.Serialize(msg)
	if err != nil {
		return err
	}
	return w.writeAll([]byte(line))
}

func (w *Writer) writeAll(b []byte) error {
	for len(b) > 0 {
		if err := w.conn.SetWriteDeadline(time.Time{}); err != nil {
			return err
		}

		n, err := w.conn.Write(b)
		b = b[n:]
		if err != nil {
			if isInterrupted(err) {
				continue
			}
			return err
		}
	}

	return nil
}
