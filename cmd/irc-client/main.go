// Command irc-client is a terminal-based IRC client: it connects to a
// server (optionally over TLS), registers a nick, and drives a
// full-screen terminal UI for joining channels, messaging, and
// reviewing scrollback. See SPEC_FULL.md for the full specification.
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jessevdk/go-flags"

	"github.com/asquared31415/irc-client/internal/logging"
	"github.com/asquared31415/irc-client/termui"
)

// options mirrors spec.md §6's CLI contract: --addr and --nick are
// required, --tls and --twitch-token are optional.
type options struct {
	Addr        string `long:"addr" required:"true" description:"host:port of the IRC server"`
	Nick        string `long:"nick" required:"true" description:"nickname to register with"`
	TLS         bool   `long:"tls" description:"connect using TLS"`
	TwitchToken string `long:"twitch-token" description:"if set, sent as PASS before registration"`
}

func main() {
	var opts options
	if _, err := flags.NewParser(&opts, flags.Default).Parse(); err != nil {
		var flagErr *flags.Error
		if errors.As(err, &flagErr) && flagErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	log, logFile, err := logging.Open(opts.Addr, time.Now())
	if err != nil {
		fmt.Fprintln(os.Stderr, "irc-client:", err)
		os.Exit(1)
	}
	defer logFile.Close()
	entry := log.WithField("addr", opts.Addr)

	screen, err := termui.NewScreen()
	if err != nil {
		fmt.Fprintln(os.Stderr, "irc-client: terminal init:", err)
		os.Exit(1)
	}

	// Panic hook: always leave the alt screen and disable raw mode
	// before a panic propagates further, per spec.md §7 and grounded in
	// the teacher's Config.RecoverFunc/DefaultRecoverHandler pattern of
	// never letting a panic escape without running the recovery path
	// first (handler.go).
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			panic(r)
		}
	}()

	err = run(opts, screen, entry)
	screen.Fini()

	if err != nil {
		fmt.Fprintln(os.Stderr, "irc-client:", err)
		os.Exit(1)
	}
}
