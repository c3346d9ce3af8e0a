// Package test exercises the full outbound/inbound round trip — client,
// middleware, and metrics wired together against a real net.Listen
// fixture — the same end-to-end, dial-a-real-listener style the teacher's
// own integration test used, now driving an Open Protocol handshake and a
// parameter set request instead of a JSON-RPC Arith.Add call.
package test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/dezemand/openprotocol-go/client"
	"github.com/dezemand/openprotocol-go/metrics"
	"github.com/dezemand/openprotocol-go/middleware"
	"github.com/dezemand/openprotocol-go/protocol"
	"github.com/dezemand/openprotocol-go/transport"
)

func writeMessage(conn net.Conn, msg protocol.Message) error {
	frame, err := protocol.EncodeMessage(msg, protocol.HeaderOverrides{})
	if err != nil {
		return err
	}
	frame = append(frame, 0x00)
	_, err = conn.Write(frame)
	return err
}

// fakeController plays the controller side of one connection: replies to
// the MID 0001 handshake with MID 0002, then to a MID 0010 parameter set
// request with a single-entry MID 0011 listing, then to the MID 0012
// selection with the full MID 0013 parameter set data.
func fakeController(t *testing.T, ln net.Listener) {
	t.Helper()
	conn, err := ln.Accept()
	if err != nil {
		t.Errorf("fakeController accept: %v", err)
		return
	}
	defer conn.Close()

	fr := transport.NewFrameReader(conn)
	ctx := context.Background()

	if _, _, err := fr.ReadNextFrame(ctx); err != nil { // MID 0001 handshake
		t.Errorf("fakeController read handshake: %v", err)
		return
	}
	if err := writeMessage(conn, protocol.MID0002rev1{CellID: 1, ChannelID: 1, ControllerName: "Airbag1"}); err != nil {
		t.Errorf("fakeController write MID0002: %v", err)
		return
	}

	if _, _, err := fr.ReadNextFrame(ctx); err != nil { // MID 0010 parameter set request
		t.Errorf("fakeController read MID0010: %v", err)
		return
	}
	if err := writeMessage(conn, protocol.MID0011rev1{NumberOfParameterSets: 1, ParameterSetIDs: []uint16{1}}); err != nil {
		t.Errorf("fakeController write MID0011: %v", err)
		return
	}

	if _, _, err := fr.ReadNextFrame(ctx); err != nil { // MID 0012 parameter set selection
		t.Errorf("fakeController read MID0012: %v", err)
		return
	}
	if err := writeMessage(conn, protocol.MID0013rev1{
		ParameterSetID:    1,
		ParameterSetName:  "Final tighten",
		RotationDirection: protocol.RotationDirectionClockWise,
		BatchSize:         1,
		TorqueMin:         100,
		TorqueMax:         200,
		FinalTorqueTarget: 150,
	}); err != nil {
		t.Errorf("fakeController write MID0013: %v", err)
		return
	}
}

func TestEventLoopParameterSetRoundTrip(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("net.Listen: %v", err)
	}
	defer ln.Close()

	go fakeController(t, ln)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	loop, err := client.Connect(ctx, client.Config{Addr: ln.Addr().String(), Logger: client.NopLogger{}})
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	defer loop.Close()

	reg := prometheus.NewRegistry()
	collector := metrics.NewCollector(reg)

	send := middleware.Chain(
		middleware.LoggingMiddleware(),
		middleware.RateLimitMiddleware(1000, 10),
	)(loop.Send)

	if _, err := loop.Poll(ctx); err != nil { // observe the outbound handshake
		t.Fatalf("Poll (handshake send): %v", err)
	}

	handshakeReply, err := loop.Poll(ctx)
	if err != nil {
		t.Fatalf("Poll (handshake reply): %v", err)
	}
	collector.ObserveReceived(handshakeReply.Message, 0)
	if _, ok := handshakeReply.Message.(protocol.MID0002rev1); !ok {
		t.Fatalf("handshake reply = %T, want MID0002rev1", handshakeReply.Message)
	}

	if err := send(ctx, protocol.MID0010rev1{}); err != nil {
		t.Fatalf("send MID0010: %v", err)
	}
	if _, err := loop.Poll(ctx); err != nil { // observe the outbound MID0010
		t.Fatalf("Poll (MID0010 send): %v", err)
	}

	listEvent, err := loop.Poll(ctx)
	if err != nil {
		t.Fatalf("Poll (MID0011 reply): %v", err)
	}
	collector.ObserveReceived(listEvent.Message, 0)
	list, ok := listEvent.Message.(protocol.MID0011rev1)
	if !ok {
		t.Fatalf("MID0011 reply = %T, want MID0011rev1", listEvent.Message)
	}
	if len(list.ParameterSetIDs) != 1 || list.ParameterSetIDs[0] != 1 {
		t.Fatalf("ParameterSetIDs = %v, want [1]", list.ParameterSetIDs)
	}

	if err := send(ctx, protocol.MID0012rev1{ParameterSetID: list.ParameterSetIDs[0]}); err != nil {
		t.Fatalf("send MID0012: %v", err)
	}
	if _, err := loop.Poll(ctx); err != nil { // observe the outbound MID0012
		t.Fatalf("Poll (MID0012 send): %v", err)
	}

	dataEvent, err := loop.Poll(ctx)
	if err != nil {
		t.Fatalf("Poll (MID0013 reply): %v", err)
	}
	collector.ObserveReceived(dataEvent.Message, 0)
	data, ok := dataEvent.Message.(protocol.MID0013rev1)
	if !ok {
		t.Fatalf("MID0013 reply = %T, want MID0013rev1", dataEvent.Message)
	}
	if data.ParameterSetName != "Final tighten" {
		t.Fatalf("ParameterSetName = %q, want %q", data.ParameterSetName, "Final tighten")
	}

	if got, err := testutil.GatherAndCount(reg, "openprotocol_frames_received_total"); err != nil {
		t.Fatalf("GatherAndCount: %v", err)
	} else if got != 3 {
		t.Fatalf("openprotocol_frames_received_total series = %d, want 3 (MID0002, MID0011, MID0013)", got)
	}
}
