package transport

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/dezemand/openprotocol-go/protocol"
)

// mid0002Frame is a complete MID0002rev1 frame: 20-byte header (length 57,
// mid 2, revision 1, every other header field blank), the 37-byte payload
// from protocol's own communication_test.go fixture, and the trailing NUL.
const mid0002Frame = "00570002001         010001020103Airbag1                  \x00"

func TestFrameReaderReadsCompleteFrame(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()

	go func() {
		server.Write([]byte(mid0002Frame))
	}()

	r := NewFrameReader(client)
	header, msg, err := r.ReadNextFrame(context.Background())
	if err != nil {
		t.Fatalf("ReadNextFrame: %v", err)
	}
	if header.Mid != 2 {
		t.Errorf("header.Mid = %d, want 2", header.Mid)
	}
	m, ok := msg.(protocol.MID0002rev1)
	if !ok {
		t.Fatalf("msg is %T, want protocol.MID0002rev1", msg)
	}
	if m.ControllerName != "Airbag1" {
		t.Errorf("ControllerName = %q, want %q", m.ControllerName, "Airbag1")
	}
}

func TestFrameReaderAcrossShortReads(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()

	frame := []byte(mid0002Frame)
	go func() {
		for i := 0; i < len(frame); i++ {
			server.Write(frame[i : i+1])
			time.Sleep(time.Millisecond)
		}
	}()

	r := NewFrameReader(client)
	header, _, err := r.ReadNextFrame(context.Background())
	if err != nil {
		t.Fatalf("ReadNextFrame across short reads: %v", err)
	}
	if header.Mid != 2 {
		t.Errorf("header.Mid = %d, want 2", header.Mid)
	}
}

func TestFrameReaderConnectionAbortedOnEmptyBuffer(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()
	server.Close()

	r := NewFrameReader(client)
	_, _, err := r.ReadNextFrame(context.Background())
	if err != ErrConnectionAborted {
		t.Fatalf("ReadNextFrame() err = %v, want ErrConnectionAborted", err)
	}
}

func TestFrameReaderConnectionResetOnPartialFrame(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()

	go func() {
		server.Write([]byte("0057000201"))
		server.Close()
	}()

	r := NewFrameReader(client)
	_, _, err := r.ReadNextFrame(context.Background())
	resetErr, ok := err.(*ErrConnectionResetError)
	if !ok {
		t.Fatalf("ReadNextFrame() err = %v (%T), want *ErrConnectionResetError", err, err)
	}
	if resetErr.Buffered == 0 {
		t.Errorf("ErrConnectionResetError.Buffered = 0, want > 0")
	}
}

func TestFrameReaderContextCancelled(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewFrameReader(client)
	_, _, err := r.ReadNextFrame(ctx)
	if err != context.Canceled {
		t.Fatalf("ReadNextFrame() err = %v, want context.Canceled", err)
	}
}
