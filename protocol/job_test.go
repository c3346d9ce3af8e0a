package protocol

import (
	"testing"
	"time"

	"github.com/dezemand/openprotocol-go/codec"
)

func TestMID0030rev1MidRevision(t *testing.T) {
	mid, revision := (MID0030rev1{}).MidRevision()
	if mid != 30 || revision != 1 {
		t.Errorf("MidRevision() = (%d, %d), want (30, 1)", mid, revision)
	}
}

func TestMID0031rev1MidRevision(t *testing.T) {
	m := MID0031rev1{NumberOfJobs: 2, JobIDs: []uint8{3, 4}}
	mid, revision := m.MidRevision()
	if mid != 31 || revision != 1 {
		t.Errorf("MidRevision() = (%d, %d), want (31, 1)", mid, revision)
	}
}

func TestMID0035rev1Encode(t *testing.T) {
	m := MID0035rev1{
		JobID:           1,
		JobStatus:       0,
		JobBatchMode:    0,
		JobBatchSize:    8,
		JobBatchCounter: 3,
		Timestamp:       time.Date(2001, 12, 1, 20, 12, 45, 0, time.Local),
	}

	e := codec.NewEncoder()
	if err := m.EncodePayload(e); err != nil {
		t.Fatalf("EncodePayload: %v", err)
	}
	if got, want := string(e.Bytes()), "0101020030040008050003062001-12-01:20:12:45"; got != want {
		t.Errorf("EncodePayload() = %q, want %q", got, want)
	}
}

func TestMID0035rev1Decode(t *testing.T) {
	d := codec.NewDecoder([]byte("0101020030040008050003062001-12-01:20:12:45"))

	msg, err := decodeMID0035rev1(d)
	if err != nil {
		t.Fatalf("decodeMID0035rev1: %v", err)
	}
	got, ok := msg.(MID0035rev1)
	if !ok {
		t.Fatalf("msg is %T, want MID0035rev1", msg)
	}
	want := MID0035rev1{
		JobID:           1,
		JobStatus:       0,
		JobBatchMode:    0,
		JobBatchSize:    8,
		JobBatchCounter: 3,
		Timestamp:       time.Date(2001, 12, 1, 20, 12, 45, 0, time.Local),
	}
	if got.JobID != want.JobID || got.JobStatus != want.JobStatus || got.JobBatchMode != want.JobBatchMode ||
		got.JobBatchSize != want.JobBatchSize || got.JobBatchCounter != want.JobBatchCounter ||
		!got.Timestamp.Equal(want.Timestamp) {
		t.Errorf("decodeMID0035rev1() = %+v, want %+v", got, want)
	}
}
