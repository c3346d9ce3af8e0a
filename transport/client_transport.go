// Package transport implements the incremental frame reader that sits
// between a raw net.Conn and the protocol package's message decoder.
//
// Open Protocol frames arrive as an undelimited ASCII byte stream: a
// 20-byte header states the total frame length, the payload follows, and a
// single trailing NUL closes the frame. A short TCP read can land anywhere
// inside that shape, so FrameReader keeps a growable buffer and retries
// protocol.DecodeMessage against it, topping the buffer up only when the
// decoder reports it ran out of bytes — the same "read, then parse, then
// ask for more on failure" loop the reference recvLoop used for its
// length-prefixed binary frames, adapted to a decoder that can tell us
// exactly how many more bytes it needs instead of a fixed-size header read.
package transport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"

	"github.com/dezemand/openprotocol-go/codec"
	"github.com/dezemand/openprotocol-go/protocol"
)

// ErrConnectionAborted is returned when the peer closes the connection
// cleanly with no partial frame buffered — a normal disconnect.
var ErrConnectionAborted = errors.New("transport: connection aborted")

// ErrConnectionResetError is returned when the peer closes the connection
// while a partial frame sits in the buffer — the stream ended mid-frame.
type ErrConnectionResetError struct {
	Buffered int
}

func (e *ErrConnectionResetError) Error() string {
	return fmt.Sprintf("transport: connection reset with %d bytes of an incomplete frame buffered", e.Buffered)
}

// readChunk is how many bytes FrameReader asks the connection for on every
// read, whatever the decoder says it's short by, so a stream of small frames
// doesn't turn into one syscall per frame.
const readChunk = 512

// FrameReader incrementally assembles and decodes Open Protocol frames off
// a single net.Conn. It is not safe for concurrent use — exactly one
// goroutine should call ReadNextFrame, the same single-reader discipline
// the reference transport used to keep frame boundaries from being
// corrupted by overlapping reads.
type FrameReader struct {
	conn net.Conn
	buf  bytes.Buffer
	tmp  [readChunk]byte
}

// NewFrameReader wraps conn for incremental frame decoding.
func NewFrameReader(conn net.Conn) *FrameReader {
	return &FrameReader{conn: conn}
}

// ReadNextFrame decodes the next complete frame off the connection,
// reading more bytes from it as needed. It blocks until a frame is
// decoded, the context is done, or the connection fails.
func (r *FrameReader) ReadNextFrame(ctx context.Context) (protocol.Header, protocol.Message, error) {
	for {
		if header, msg, err := r.tryDecode(); err == nil {
			return header, msg, nil
		} else if need, ok := asInsufficientBytes(err); ok {
			if err := r.fill(ctx, need); err != nil {
				return protocol.Header{}, nil, err
			}
			continue
		} else {
			return protocol.Header{}, nil, err
		}
	}
}

// tryDecode attempts one decode against the buffered bytes without
// consuming them on failure, so a short frame can be retried once more
// bytes arrive.
func (r *FrameReader) tryDecode() (protocol.Header, protocol.Message, error) {
	d := codec.NewDecoder(r.buf.Bytes())
	header, msg, err := protocol.DecodeMessage(d)
	if err != nil {
		return protocol.Header{}, nil, err
	}
	if err := d.ExpectChar(0x00); err != nil {
		return protocol.Header{}, nil, err
	}
	r.buf.Next(d.Pos())
	return header, msg, nil
}

// asInsufficientBytes reports how many additional bytes a decode attempt
// was short by, if the failure was recoverable by reading more.
func asInsufficientBytes(err error) (int, bool) {
	var insuff *codec.InsufficientBytesError
	if errors.As(err, &insuff) {
		return insuff.Need - insuff.Have, true
	}
	return 0, false
}

// fill makes one Read of up to readChunk bytes from the connection into the
// buffer, classifying a zero-byte read against whatever is already
// buffered. Cancellation is cooperative: the caller is expected to close
// conn when ctx is done, which unblocks the pending Read with an error,
// the same assumption the event loop's own shutdown path makes.
//
// need is floored to readChunk so a stream of small frames doesn't turn
// into one syscall per frame, and capped at readChunk (the size of tmp)
// since a shortfall wider than one read chunk is satisfied by looping
// ReadNextFrame's fill/retry cycle rather than by widening a single read.
func (r *FrameReader) fill(ctx context.Context, need int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if need < readChunk {
		need = readChunk
	}
	if need > readChunk {
		need = readChunk
	}

	n, err := r.conn.Read(r.tmp[:need])
	if n > 0 {
		// Even a Read that also reports an error (e.g. EOF reached on the
		// same call that delivered the last bytes) hands back real data;
		// buffer it and let the next decode attempt decide whether it's
		// enough before treating the connection as closed.
		r.buf.Write(r.tmp[:n])
		return nil
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	if r.buf.Len() == 0 {
		return ErrConnectionAborted
	}
	return &ErrConnectionResetError{Buffered: r.buf.Len()}
}
