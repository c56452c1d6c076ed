package ircnet

import "fmt"

// Closed is returned by Framer.Recv when the connection can no longer be
// read: a zero-byte read that fails with an error other than a timeout
// or an interruption (io.EOF when the peer has closed it), or a closed
// pipe refusing the read deadline.
type Closed struct{}

func (Closed) Error() string { return "ircnet: connection closed by peer" }

// TooManyRetries is returned by Framer.Recv when a read has been
// interrupted more than the bounded retry count allows. Writer does not
// return it: writes retry on interruption without a bound.
type TooManyRetries struct {
	Op string
}

func (e TooManyRetries) Error() string {
	return fmt.Sprintf("ircnet: %s interrupted too many times", e.Op)
}
