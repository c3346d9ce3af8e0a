package client

import (
	"context"
	"io"
	"net"
	"testing"
	"time"

	"github.com/dezemand/openprotocol-go/protocol"
	"github.com/dezemand/openprotocol-go/registry"
)

// poolFakeController accepts connections on ln in a loop, replying to each
// with a MID 0002 handshake and then holding it open, until ln is closed.
// Unlike client_test.go's fakeController (which expects exactly one
// connection and fails the test if Accept never sees one), this tolerates
// a listener that a given test run never dials — a Pool test wires up
// every instance in a cell up front, but consistent hashing may never
// route a key to some of them, so their listener's Accept is expected to
// return a "closed" error once the test tears down, not a failure.
func poolFakeController(ln net.Listener, controllerName string) {
	for {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		go func(conn net.Conn) {
			defer conn.Close()
			buf := make([]byte, 20)
			if _, err := readFull(conn, buf); err != nil {
				return
			}
			reply := protocol.MID0002rev1{CellID: 1, ChannelID: 1, ControllerName: controllerName}
			frame, err := protocol.EncodeMessage(reply, protocol.HeaderOverrides{})
			if err != nil {
				return
			}
			frame = append(frame, 0x00)
			if _, err := conn.Write(frame); err != nil {
				return
			}
			io.Copy(io.Discard, conn)
		}(conn)
	}
}

func TestPoolRoutesKeyToSameConnection(t *testing.T) {
	ln1, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("net.Listen: %v", err)
	}
	defer ln1.Close()
	ln2, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("net.Listen: %v", err)
	}
	defer ln2.Close()

	go poolFakeController(ln1, "Airbag1-A")
	go poolFakeController(ln2, "Airbag1-B")

	instances := []registry.ServiceInstance{
		{Addr: ln1.Addr().String(), Weight: 1, Version: "1.0"},
		{Addr: ln2.Addr().String(), Weight: 1, Version: "1.0"},
	}
	pool := NewPool(instances, Config{Logger: NopLogger{}})
	defer pool.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	loop1, err := pool.Connection(ctx, "VF1RFB00123456789")
	if err != nil {
		t.Fatalf("Connection: %v", err)
	}
	loop2, err := pool.Connection(ctx, "VF1RFB00123456789")
	if err != nil {
		t.Fatalf("Connection: %v", err)
	}
	if loop1 != loop2 {
		t.Fatalf("same key returned different EventLoops: %p vs %p", loop1, loop2)
	}
}

func TestPoolRoutesDifferentKeysAcrossEndpoints(t *testing.T) {
	ln1, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("net.Listen: %v", err)
	}
	defer ln1.Close()
	ln2, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("net.Listen: %v", err)
	}
	defer ln2.Close()

	go poolFakeController(ln1, "Airbag1-A")
	go poolFakeController(ln2, "Airbag1-B")

	instances := []registry.ServiceInstance{
		{Addr: ln1.Addr().String(), Weight: 1, Version: "1.0"},
		{Addr: ln2.Addr().String(), Weight: 1, Version: "1.0"},
	}
	pool := NewPool(instances, Config{Logger: NopLogger{}})
	defer pool.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	seen := map[*EventLoop]bool{}
	for i := 0; i < 20; i++ {
		loop, err := pool.Connection(ctx, vinForIndex(i))
		if err != nil {
			t.Fatalf("Connection: %v", err)
		}
		seen[loop] = true
	}
	if len(seen) < 2 {
		t.Fatalf("expected keys to spread across both endpoints, got %d distinct connections", len(seen))
	}
}

func vinForIndex(i int) string {
	digits := "0123456789"
	return "VF1RFB001234" + string(digits[i%10]) + string(digits[(i/10)%10])
}
