// Package client implements the Ignite wire client: one new TCP connection
// per command, a single request written, the write half shut down to signal
// end of request, and the response read to EOF and decoded.
package client

import (
	"fmt"
	"io"
	"net"

	"github.com/iamNilotpal/ignitedb/internal/codec"
)

// Client issues commands against a remote ignitedb server.
type Client struct {
	addr string
}

// New builds a Client targeting addr (host:port).
func New(addr string) *Client {
	return &Client{addr: addr}
}

// Set issues a Set(key, value) command. Returns an error unless the server
// responds SuccessfulSet.
func (c *Client) Set(key, value string) error {
	resp, err := c.roundTrip(codec.NewSet(key, value))
	if err != nil {
		return err
	}
	if resp.Tag != codec.TagSuccessfulSet {
		return unexpectedResponse(resp)
	}
	return nil
}

// Get issues a Get(key) command. Returns (value, true, nil) on a hit,
// ("", false, nil) on KeyNotFound, and an error for anything else.
func (c *Client) Get(key string) (string, bool, error) {
	resp, err := c.roundTrip(codec.NewGet(key))
	if err != nil {
		return "", false, err
	}
	switch resp.Tag {
	case codec.TagSuccessfulGet:
		return resp.Payload, true, nil
	case codec.TagKeyNotFound:
		return "", false, nil
	default:
		return "", false, unexpectedResponse(resp)
	}
}

// Remove issues a Remove(key) command. Returns an error for anything but
// SuccessfulRm, including KeyNotFound.
func (c *Client) Remove(key string) error {
	resp, err := c.roundTrip(codec.NewRemove(key))
	if err != nil {
		return err
	}
	switch resp.Tag {
	case codec.TagSuccessfulRm:
		return nil
	case codec.TagKeyNotFound:
		return fmt.Errorf("Key not found")
	default:
		return unexpectedResponse(resp)
	}
}

// roundTrip opens a fresh connection, writes rec, shuts down the write
// half, reads the response to EOF, and decodes it.
func (c *Client) roundTrip(rec codec.Record) (codec.Response, error) {
	conn, err := net.Dial("tcp", c.addr)
	if err != nil {
		return codec.Response{}, fmt.Errorf("connecting to server: %w", err)
	}
	defer conn.Close()

	if _, err := codec.Encode(conn, rec); err != nil {
		return codec.Response{}, fmt.Errorf("writing request: %w", err)
	}

	if tc, ok := conn.(*net.TCPConn); ok {
		if err := tc.CloseWrite(); err != nil {
			return codec.Response{}, fmt.Errorf("shutting down write half: %w", err)
		}
	}

	buf, err := io.ReadAll(conn)
	if err != nil {
		return codec.Response{}, fmt.Errorf("reading response: %w", err)
	}

	return codec.ResponseFromBytes(buf), nil
}

func unexpectedResponse(resp codec.Response) error {
	if resp.Tag == codec.TagErr {
		return fmt.Errorf("server error: %s", resp.Payload)
	}
	return fmt.Errorf("unexpected response tag %q", rune(resp.Tag))
}
