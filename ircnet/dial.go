package ircnet

import (
	"crypto/tls"
	"net"
	"strings"
	"time"
)

// dialTimeout bounds the initial TCP handshake.
const dialTimeout = 10 * time.Second

// Dial connects to addr ("host:port"), optionally upgrading to TLS. When
// useTLS is true the connection is wrapped with a TLS client using the
// host portion of addr for SNI and certificate verification, and the
// platform's default root CA set (Mozilla's bundled set on most
// systems) — adapted from the teacher's tlsHandshake/newConn.
func Dial(addr string, useTLS bool) (net.Conn, error) {
	conn, err := net.DialTimeout("tcp", addr, dialTimeout)
	if err != nil {
		return nil, err
	}

	if !useTLS {
		return conn, nil
	}

	host := addr
	if idx := strings.LastIndexByte(addr, ':'); idx != -1 {
		host = addr[:idx]
	}

	tlsConn := tls.Client(conn, &tls.Config{ServerName: host, MinVersion: tls.VersionTLS12})
	if err := tlsConn.Handshake(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return tlsConn, nil
}
