// Package nativemsg implements the browser native-messaging wire framing:
// a 4-byte unsigned length prefix followed by that many bytes of UTF-8
// encoded JSON, in both directions of the pipe.
//
// The prefix uses the host's native byte order, matching the browser
// process on the same machine. This is same-host IPC framing, not a
// portable wire format.
package nativemsg

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

// ErrEmptyMessage indicates the input stream ended before any byte of a
// length prefix was read. This is the normal shutdown signal from the
// browser closing the pipe, not a protocol failure.
var ErrEmptyMessage = errors.New("empty message")

// ErrMalformed indicates a truncated or undecodable inbound message.
var ErrMalformed = errors.New("malformed message")

// MaxMessageSize bounds the announced body length. The requests here are
// a few dozen bytes; a larger prefix is a corrupt frame, and rejecting it
// early avoids allocating up to 4 GiB on garbage input.
const MaxMessageSize = 8 << 20

// Channel frames JSON messages over a reader/writer pair.
type Channel struct {
	r io.Reader
	w *bufio.Writer
}

// New creates a channel over the given streams.
func New(r io.Reader, w io.Writer) *Channel {
	return &Channel{r: r, w: bufio.NewWriter(w)}
}

// Read reads one length-prefixed JSON message into v.
// Returns ErrEmptyMessage if the stream is at EOF before any byte is
// read; any shorter-than-announced input is an ErrMalformed error.
func (c *Channel) Read(v any) error {
	var prefix [4]byte
	n, err := io.ReadFull(c.r, prefix[:])
	if n == 0 && errors.Is(err, io.EOF) {
		return ErrEmptyMessage
	}
	if err != nil {
		return fmt.Errorf("%w: read length prefix: %v", ErrMalformed, err)
	}

	length := binary.NativeEndian.Uint32(prefix[:])
	if length > MaxMessageSize {
		return fmt.Errorf("%w: announced length %d exceeds %d", ErrMalformed, length, MaxMessageSize)
	}
	body := make([]byte, length)
	if _, err := io.ReadFull(c.r, body); err != nil {
		return fmt.Errorf("%w: read %d-byte body: %v", ErrMalformed, length, err)
	}

	if !utf8.Valid(body) {
		return fmt.Errorf("%w: body is not valid UTF-8", ErrMalformed)
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: decode JSON: %v", ErrMalformed, err)
	}
	return nil
}

// Write writes v as one length-prefixed compact JSON message and flushes
// the underlying writer before returning, so the peer observes the full
// reply even if the process exits immediately after.
func (c *Channel) Write(v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}

	var prefix [4]byte
	binary.NativeEndian.PutUint32(prefix[:], uint32(len(body)))
	if _, err := c.w.Write(prefix[:]); err != nil {
		return fmt.Errorf("write length prefix: %w", err)
	}
	if _, err := c.w.Write(body); err != nil {
		return fmt.Errorf("write body: %w", err)
	}
	return c.w.Flush()
}
