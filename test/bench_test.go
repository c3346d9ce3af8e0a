package test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/dezemand/openprotocol-go/client"
	"github.com/dezemand/openprotocol-go/codec"
	"github.com/dezemand/openprotocol-go/protocol"
)

// drainingController accepts one connection and discards whatever it reads
// forever, so a benchmark can hammer Send without a matching Poll loop on
// the other side ever needing to answer.
func drainingController(b *testing.B, ln net.Listener) {
	b.Helper()
	conn, err := ln.Accept()
	if err != nil {
		return
	}
	defer conn.Close()
	buf := make([]byte, 4096)
	for {
		if _, err := conn.Read(buf); err != nil {
			return
		}
	}
}

func setupEventLoop(b *testing.B) (*client.EventLoop, func()) {
	b.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		b.Fatalf("net.Listen: %v", err)
	}
	go drainingController(b, ln)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	loop, err := client.Connect(ctx, client.Config{Addr: ln.Addr().String(), Logger: client.NopLogger{}})
	if err != nil {
		b.Fatalf("Connect: %v", err)
	}
	if _, err := loop.Poll(ctx); err != nil { // drain the MID0001 handshake send
		b.Fatalf("Poll (handshake): %v", err)
	}

	return loop, func() {
		loop.Close()
		ln.Close()
	}
}

// BenchmarkSerialSend measures one goroutine sending MID0010 requests and
// observing their Outgoing event back to back on a single connection.
func BenchmarkSerialSend(b *testing.B) {
	loop, cleanup := setupEventLoop(b)
	defer cleanup()

	ctx := context.Background()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if err := loop.Send(ctx, protocol.MID0010rev1{}); err != nil {
			b.Fatal(err)
		}
		if _, err := loop.Poll(ctx); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkConcurrentSend measures many goroutines enqueuing requests onto
// the same EventLoop's bounded requests channel concurrently, with a single
// dedicated goroutine draining them via Poll — reflecting EventLoop's
// single-reader-of-Poll discipline rather than genuinely parallel decoding.
func BenchmarkConcurrentSend(b *testing.B) {
	loop, cleanup := setupEventLoop(b)
	defer cleanup()

	ctx := context.Background()
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, err := loop.Poll(ctx); err != nil {
				return
			}
		}
	}()

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if err := loop.Send(ctx, protocol.MID0010rev1{}); err != nil {
				b.Fatal(err)
			}
		}
	})
	b.StopTimer()
	cleanup()
	<-done
}

// BenchmarkEncodeDecodeMID0013 measures the cursor-based codec's round trip
// for a representative, field-heavy message, in place of the teacher's
// JSON/binary codec benchmarks (this library has one wire format, not a
// pluggable CodecType).
func BenchmarkEncodeDecodeMID0013(b *testing.B) {
	msg := protocol.MID0013rev1{
		ParameterSetID:    1,
		ParameterSetName:  "Final tighten",
		RotationDirection: protocol.RotationDirectionClockWise,
		BatchSize:         1,
		TorqueMin:         100,
		TorqueMax:         200,
		FinalTorqueTarget: 150,
		AngleMin:          10,
		AngleMax:          370,
		FinalAngleTarget:  180,
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		frame, err := protocol.EncodeMessage(msg, protocol.HeaderOverrides{})
		if err != nil {
			b.Fatal(err)
		}
		frame = append(frame, 0x00)
		d := codec.NewDecoder(frame)
		if _, _, err := protocol.DecodeMessage(d); err != nil {
			b.Fatal(err)
		}
	}
}
