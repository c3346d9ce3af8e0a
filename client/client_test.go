package client

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/dezemand/openprotocol-go/protocol"
)

// fakeController accepts one connection, reads the handshake MID 0001 frame,
// replies with a MID 0002, then holds the connection open until done is
// closed. It's the net.Listen-based fixture the teacher's integration test
// used, scaled down to a single fake peer instead of a full server. Holding
// the connection open (rather than closing as soon as the reply is sent)
// keeps the background frame reader from ever observing EOF mid-test, which
// would otherwise race against assertions made on a cancelled context.
func fakeController(t *testing.T, ln net.Listener, controllerName string, done <-chan struct{}) {
	t.Helper()
	conn, err := ln.Accept()
	if err != nil {
		t.Errorf("fakeController accept: %v", err)
		return
	}
	defer conn.Close()

	buf := make([]byte, 20)
	if _, err := readFull(conn, buf); err != nil {
		t.Errorf("fakeController read handshake header: %v", err)
		return
	}

	reply := protocol.MID0002rev1{CellID: 1, ChannelID: 1, ControllerName: controllerName}
	frame, err := protocol.EncodeMessage(reply, protocol.HeaderOverrides{})
	if err != nil {
		t.Errorf("fakeController encode reply: %v", err)
		return
	}
	frame = append(frame, 0x00)
	if _, err := conn.Write(frame); err != nil {
		t.Errorf("fakeController write reply: %v", err)
		return
	}

	<-done
}

func readFull(conn net.Conn, buf []byte) (int, error) {
	total := 0
	for total < len(buf) {
		n, err := conn.Read(buf[total:])
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func TestConnectHandshake(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("net.Listen: %v", err)
	}
	defer ln.Close()

	done := make(chan struct{})
	defer close(done)
	go fakeController(t, ln, "Airbag1", done)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	loop, err := Connect(ctx, Config{Addr: ln.Addr().String(), Logger: NopLogger{}})
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	defer loop.Close()

	first, err := loop.Poll(ctx)
	if err != nil {
		t.Fatalf("Poll (handshake send): %v", err)
	}
	if first.Kind != EventOutgoing {
		t.Fatalf("first event kind = %v, want Outgoing", first.Kind)
	}
	if _, ok := first.Message.(protocol.MID0001rev7); !ok {
		t.Fatalf("first event message = %T, want MID0001rev7", first.Message)
	}

	second, err := loop.Poll(ctx)
	if err != nil {
		t.Fatalf("Poll (handshake reply): %v", err)
	}
	if second.Kind != EventIncoming {
		t.Fatalf("second event kind = %v, want Incoming", second.Kind)
	}
	msg, ok := second.Message.(protocol.MID0002rev1)
	if !ok {
		t.Fatalf("second event message = %T, want MID0002rev1", second.Message)
	}
	if msg.ControllerName != "Airbag1" {
		t.Errorf("ControllerName = %q, want %q", msg.ControllerName, "Airbag1")
	}
}

func TestPollSendsQueuedRequest(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("net.Listen: %v", err)
	}
	defer ln.Close()

	done := make(chan struct{})
	defer close(done)
	go fakeController(t, ln, "Airbag1", done)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	loop, err := Connect(ctx, Config{Addr: ln.Addr().String(), Logger: NopLogger{}})
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	defer loop.Close()

	if _, err := loop.Poll(ctx); err != nil { // handshake send
		t.Fatalf("Poll: %v", err)
	}
	if _, err := loop.Poll(ctx); err != nil { // handshake reply
		t.Fatalf("Poll: %v", err)
	}

	if err := loop.Send(ctx, protocol.MID0010rev1{}); err != nil {
		t.Fatalf("Send: %v", err)
	}
	ev, err := loop.Poll(ctx)
	if err != nil {
		t.Fatalf("Poll (queued send): %v", err)
	}
	if ev.Kind != EventOutgoing {
		t.Fatalf("event kind = %v, want Outgoing", ev.Kind)
	}
	if _, ok := ev.Message.(protocol.MID0010rev1); !ok {
		t.Fatalf("event message = %T, want MID0010rev1", ev.Message)
	}
}

func TestPollCancellation(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("net.Listen: %v", err)
	}
	defer ln.Close()

	done := make(chan struct{})
	defer close(done)
	go fakeController(t, ln, "Airbag1", done)

	connectCtx, connectCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer connectCancel()

	loop, err := Connect(connectCtx, Config{Addr: ln.Addr().String(), Logger: NopLogger{}})
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	defer loop.Close()

	// Drain the handshake send and the controller's reply so neither the
	// requests nor the frames channel has anything ready; otherwise select
	// could legally pick that branch instead of the already-done context.
	if _, err := loop.Poll(connectCtx); err != nil {
		t.Fatalf("Poll (handshake send): %v", err)
	}
	if _, err := loop.Poll(connectCtx); err != nil {
		t.Fatalf("Poll (handshake reply): %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := loop.Poll(ctx); err != context.Canceled {
		t.Fatalf("Poll() err = %v, want context.Canceled", err)
	}
}
