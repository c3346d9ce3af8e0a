package protocol

import (
	"time"

	"github.com/dezemand/openprotocol-go/codec"
)

// MID0030rev1 requests the number of jobs available on the controller;
// empty payload.
type MID0030rev1 struct{}

func (MID0030rev1) MidRevision() (uint16, uint16)        { return 30, 1 }
func (MID0030rev1) EncodePayload(e *codec.Encoder) error { return nil }
func decodeMID0030rev1(d *codec.Decoder) (Message, error) { return MID0030rev1{}, nil }

// MID0031rev1 uploads the list of available job IDs.
type MID0031rev1 struct {
	NumberOfJobs uint8
	JobIDs       []uint8
}

func (MID0031rev1) MidRevision() (uint16, uint16) { return 31, 1 }

func (m MID0031rev1) EncodePayload(e *codec.Encoder) error {
	if err := codec.EncodeUint8(e, m.NumberOfJobs, 2); err != nil {
		return err
	}
	return codec.WriteSizedList(e, m.JobIDs, 2, int(m.NumberOfJobs), codec.EncodeUint8)
}

func decodeMID0031rev1(d *codec.Decoder) (Message, error) {
	var m MID0031rev1
	var err error
	if m.NumberOfJobs, err = codec.DecodeUint8(d, 2); err != nil {
		return nil, err
	}
	if m.JobIDs, err = codec.ReadSizedList(d, int(m.NumberOfJobs), 2, codec.DecodeUint8); err != nil {
		return nil, err
	}
	return m, nil
}

// MID0031rev2 widens job IDs to 4-digit values over rev1.
type MID0031rev2 struct {
	NumberOfJobs uint16
	JobIDs       []uint16
}

func (MID0031rev2) MidRevision() (uint16, uint16) { return 31, 2 }

func (m MID0031rev2) EncodePayload(e *codec.Encoder) error {
	if err := codec.EncodeUint16(e, m.NumberOfJobs, 4); err != nil {
		return err
	}
	return codec.WriteSizedList(e, m.JobIDs, 4, int(m.NumberOfJobs), codec.EncodeUint16)
}

func decodeMID0031rev2(d *codec.Decoder) (Message, error) {
	var m MID0031rev2
	var err error
	if m.NumberOfJobs, err = codec.DecodeUint16(d, 4); err != nil {
		return nil, err
	}
	if m.JobIDs, err = codec.ReadSizedList(d, int(m.NumberOfJobs), 4, codec.DecodeUint16); err != nil {
		return nil, err
	}
	return m, nil
}

// MID0032rev1 requests a job's parameter list.
type MID0032rev1 struct {
	JobID uint8
}

func (MID0032rev1) MidRevision() (uint16, uint16) { return 32, 1 }

func (m MID0032rev1) EncodePayload(e *codec.Encoder) error {
	return codec.EncodeUint8(e, m.JobID, 2)
}

func decodeMID0032rev1(d *codec.Decoder) (Message, error) {
	id, err := codec.DecodeUint8(d, 2)
	if err != nil {
		return nil, err
	}
	return MID0032rev1{JobID: id}, nil
}

// MID0032rev2 widens the requested job ID to 4 digits over rev1.
type MID0032rev2 struct {
	JobID uint16
}

func (MID0032rev2) MidRevision() (uint16, uint16) { return 32, 2 }

func (m MID0032rev2) EncodePayload(e *codec.Encoder) error {
	return codec.EncodeUint16(e, m.JobID, 4)
}

func decodeMID0032rev2(d *codec.Decoder) (Message, error) {
	id, err := codec.DecodeUint16(d, 4)
	if err != nil {
		return nil, err
	}
	return MID0032rev2{JobID: id}, nil
}

// JobParameterRev1 is one parameter-set entry in a MID0033rev1 job list. Its
// Decode/Encode are hand-written, not built from the numbered-field
// combinators, because its fields are separated by literal ':' characters
// and terminated by ';' rather than being back-to-back fixed-width values.
type JobParameterRev1 struct {
	ChannelID  uint8
	ProgramID  uint16
	AutoSelect bool
	BatchSize  uint8
}

func DecodeJobParameterRev1(d *codec.Decoder) (JobParameterRev1, error) {
	var p JobParameterRev1
	var err error
	if p.ChannelID, err = codec.DecodeUint8(d, 2); err != nil {
		return JobParameterRev1{}, err
	}
	if err = d.ExpectChar(':'); err != nil {
		return JobParameterRev1{}, err
	}
	if p.ProgramID, err = codec.DecodeUint16(d, 3); err != nil {
		return JobParameterRev1{}, err
	}
	if err = d.ExpectChar(':'); err != nil {
		return JobParameterRev1{}, err
	}
	if p.AutoSelect, err = codec.DecodeBool(d, 1); err != nil {
		return JobParameterRev1{}, err
	}
	if err = d.ExpectChar(':'); err != nil {
		return JobParameterRev1{}, err
	}
	if p.BatchSize, err = codec.DecodeUint8(d, 2); err != nil {
		return JobParameterRev1{}, err
	}
	if err = d.ExpectChar(';'); err != nil {
		return JobParameterRev1{}, err
	}
	return p, nil
}

func EncodeJobParameterRev1(e *codec.Encoder, p JobParameterRev1) error {
	if err := codec.EncodeUint8(e, p.ChannelID, 2); err != nil {
		return err
	}
	if err := codec.EncodeChar(e, ':'); err != nil {
		return err
	}
	if err := codec.EncodeUint16(e, p.ProgramID, 3); err != nil {
		return err
	}
	if err := codec.EncodeChar(e, ':'); err != nil {
		return err
	}
	if err := codec.EncodeBool(e, p.AutoSelect, 1); err != nil {
		return err
	}
	if err := codec.EncodeChar(e, ':'); err != nil {
		return err
	}
	if err := codec.EncodeUint8(e, p.BatchSize, 2); err != nil {
		return err
	}
	return codec.EncodeChar(e, ';')
}

// MID0033rev1 uploads a job's full definition.
type MID0033rev1 struct {
	JobID                   uint8
	JobName                 string
	ForcedOrder             uint8
	MaxTimeFirstTightening  uint16
	MaxTimeToCompleteJob    uint32
	JobBatchMode            uint8
	LockAtJobDone           uint8
	UseLineControl          uint8
	RepeatJob               uint8
	ToolLoosening           uint8
	Reserved                uint8
	NumberOfParameterSets   uint8
	JobList                 []JobParameterRev1
}

func (MID0033rev1) MidRevision() (uint16, uint16) { return 33, 1 }

func (m MID0033rev1) EncodePayload(e *codec.Encoder) error {
	if err := codec.WriteNumberedField(e, 1, m.JobID, 2, codec.EncodeUint8); err != nil {
		return err
	}
	if err := codec.WriteNumberedField(e, 2, m.JobName, 25, codec.EncodeString); err != nil {
		return err
	}
	if err := codec.WriteNumberedField(e, 3, m.ForcedOrder, 1, codec.EncodeUint8); err != nil {
		return err
	}
	if err := codec.WriteNumberedField(e, 4, m.MaxTimeFirstTightening, 4, codec.EncodeUint16); err != nil {
		return err
	}
	if err := codec.WriteNumberedField(e, 5, m.MaxTimeToCompleteJob, 5, codec.EncodeUint32); err != nil {
		return err
	}
	if err := codec.WriteNumberedField(e, 6, m.JobBatchMode, 1, codec.EncodeUint8); err != nil {
		return err
	}
	if err := codec.WriteNumberedField(e, 7, m.LockAtJobDone, 1, codec.EncodeUint8); err != nil {
		return err
	}
	if err := codec.WriteNumberedField(e, 8, m.UseLineControl, 1, codec.EncodeUint8); err != nil {
		return err
	}
	if err := codec.WriteNumberedField(e, 9, m.RepeatJob, 1, codec.EncodeUint8); err != nil {
		return err
	}
	if err := codec.WriteNumberedField(e, 10, m.ToolLoosening, 1, codec.EncodeUint8); err != nil {
		return err
	}
	if err := codec.WriteNumberedField(e, 11, m.Reserved, 1, codec.EncodeUint8); err != nil {
		return err
	}
	if err := codec.WriteNumberedField(e, 12, m.NumberOfParameterSets, 2, codec.EncodeUint8); err != nil {
		return err
	}
	return codec.WriteList(e, m.JobList, int(m.NumberOfParameterSets), EncodeJobParameterRev1)
}

func decodeMID0033rev1(d *codec.Decoder) (Message, error) {
	var m MID0033rev1
	var err error
	if m.JobID, err = codec.ReadNumberedField(d, 1, 2, codec.DecodeUint8); err != nil {
		return nil, err
	}
	if m.JobName, err = codec.ReadNumberedField(d, 2, 25, codec.DecodeString); err != nil {
		return nil, err
	}
	if m.ForcedOrder, err = codec.ReadNumberedField(d, 3, 1, codec.DecodeUint8); err != nil {
		return nil, err
	}
	if m.MaxTimeFirstTightening, err = codec.ReadNumberedField(d, 4, 4, codec.DecodeUint16); err != nil {
		return nil, err
	}
	if m.MaxTimeToCompleteJob, err = codec.ReadNumberedField(d, 5, 5, codec.DecodeUint32); err != nil {
		return nil, err
	}
	if m.JobBatchMode, err = codec.ReadNumberedField(d, 6, 1, codec.DecodeUint8); err != nil {
		return nil, err
	}
	if m.LockAtJobDone, err = codec.ReadNumberedField(d, 7, 1, codec.DecodeUint8); err != nil {
		return nil, err
	}
	if m.UseLineControl, err = codec.ReadNumberedField(d, 8, 1, codec.DecodeUint8); err != nil {
		return nil, err
	}
	if m.RepeatJob, err = codec.ReadNumberedField(d, 9, 1, codec.DecodeUint8); err != nil {
		return nil, err
	}
	if m.ToolLoosening, err = codec.ReadNumberedField(d, 10, 1, codec.DecodeUint8); err != nil {
		return nil, err
	}
	if m.Reserved, err = codec.ReadNumberedField(d, 11, 1, codec.DecodeUint8); err != nil {
		return nil, err
	}
	if m.NumberOfParameterSets, err = codec.ReadNumberedField(d, 12, 2, codec.DecodeUint8); err != nil {
		return nil, err
	}
	if m.JobList, err = codec.ReadList(d, int(m.NumberOfParameterSets), DecodeJobParameterRev1); err != nil {
		return nil, err
	}
	return m, nil
}

// MID0034rev1 requests job-execution-status subscription; empty payload.
type MID0034rev1 struct{}

func (MID0034rev1) MidRevision() (uint16, uint16)        { return 34, 1 }
func (MID0034rev1) EncodePayload(e *codec.Encoder) error { return nil }
func decodeMID0034rev1(d *codec.Decoder) (Message, error) { return MID0034rev1{}, nil }

// MID0035rev1 reports the running job's execution status.
type MID0035rev1 struct {
	JobID            uint8
	JobStatus        uint8
	JobBatchMode     uint8
	JobBatchSize     uint16
	JobBatchCounter  uint16
	Timestamp        time.Time
}

func (MID0035rev1) MidRevision() (uint16, uint16) { return 35, 1 }

func (m MID0035rev1) EncodePayload(e *codec.Encoder) error {
	if err := codec.WriteNumberedField(e, 1, m.JobID, 2, codec.EncodeUint8); err != nil {
		return err
	}
	if err := codec.WriteNumberedField(e, 2, m.JobStatus, 1, codec.EncodeUint8); err != nil {
		return err
	}
	if err := codec.WriteNumberedField(e, 3, m.JobBatchMode, 1, codec.EncodeUint8); err != nil {
		return err
	}
	if err := codec.WriteNumberedField(e, 4, m.JobBatchSize, 4, codec.EncodeUint16); err != nil {
		return err
	}
	if err := codec.WriteNumberedField(e, 5, m.JobBatchCounter, 4, codec.EncodeUint16); err != nil {
		return err
	}
	return codec.WriteNumberedField(e, 6, m.Timestamp, 19, EncodeTimestampSized)
}

func decodeMID0035rev1(d *codec.Decoder) (Message, error) {
	var m MID0035rev1
	var err error
	if m.JobID, err = codec.ReadNumberedField(d, 1, 2, codec.DecodeUint8); err != nil {
		return nil, err
	}
	if m.JobStatus, err = codec.ReadNumberedField(d, 2, 1, codec.DecodeUint8); err != nil {
		return nil, err
	}
	if m.JobBatchMode, err = codec.ReadNumberedField(d, 3, 1, codec.DecodeUint8); err != nil {
		return nil, err
	}
	if m.JobBatchSize, err = codec.ReadNumberedField(d, 4, 4, codec.DecodeUint16); err != nil {
		return nil, err
	}
	if m.JobBatchCounter, err = codec.ReadNumberedField(d, 5, 4, codec.DecodeUint16); err != nil {
		return nil, err
	}
	if m.Timestamp, err = codec.ReadNumberedField(d, 6, 19, DecodeTimestampSized); err != nil {
		return nil, err
	}
	return m, nil
}

// MID0036rev1 subscribes to job execution status; empty payload.
type MID0036rev1 struct{}

func (MID0036rev1) MidRevision() (uint16, uint16)        { return 36, 1 }
func (MID0036rev1) EncodePayload(e *codec.Encoder) error { return nil }
func decodeMID0036rev1(d *codec.Decoder) (Message, error) { return MID0036rev1{}, nil }

// MID0037rev1 unsubscribes from job execution status; empty payload.
type MID0037rev1 struct{}

func (MID0037rev1) MidRevision() (uint16, uint16)        { return 37, 1 }
func (MID0037rev1) EncodePayload(e *codec.Encoder) error { return nil }
func decodeMID0037rev1(d *codec.Decoder) (Message, error) { return MID0037rev1{}, nil }

// MID0038rev1 selects a job.
type MID0038rev1 struct {
	JobID uint8
}

func (MID0038rev1) MidRevision() (uint16, uint16) { return 38, 1 }

func (m MID0038rev1) EncodePayload(e *codec.Encoder) error {
	return codec.WriteNumberedField(e, 1, m.JobID, 2, codec.EncodeUint8)
}

func decodeMID0038rev1(d *codec.Decoder) (Message, error) {
	id, err := codec.ReadNumberedField(d, 1, 2, codec.DecodeUint8)
	if err != nil {
		return nil, err
	}
	return MID0038rev1{JobID: id}, nil
}

// MID0038rev2 widens the selected job ID to 4 digits over rev1.
type MID0038rev2 struct {
	JobID uint16
}

func (MID0038rev2) MidRevision() (uint16, uint16) { return 38, 2 }

func (m MID0038rev2) EncodePayload(e *codec.Encoder) error {
	return codec.WriteNumberedField(e, 1, m.JobID, 4, codec.EncodeUint16)
}

func decodeMID0038rev2(d *codec.Decoder) (Message, error) {
	id, err := codec.ReadNumberedField(d, 1, 4, codec.DecodeUint16)
	if err != nil {
		return nil, err
	}
	return MID0038rev2{JobID: id}, nil
}

// MID0039rev1 restarts a job from its first tightening.
type MID0039rev1 struct {
	JobID uint8
}

func (MID0039rev1) MidRevision() (uint16, uint16) { return 39, 1 }

func (m MID0039rev1) EncodePayload(e *codec.Encoder) error {
	return codec.WriteNumberedField(e, 1, m.JobID, 2, codec.EncodeUint8)
}

func decodeMID0039rev1(d *codec.Decoder) (Message, error) {
	id, err := codec.ReadNumberedField(d, 1, 2, codec.DecodeUint8)
	if err != nil {
		return nil, err
	}
	return MID0039rev1{JobID: id}, nil
}

// MID0039rev2 widens the restarted job ID to 4 digits over rev1.
type MID0039rev2 struct {
	JobID uint16
}

func (MID0039rev2) MidRevision() (uint16, uint16) { return 39, 2 }

func (m MID0039rev2) EncodePayload(e *codec.Encoder) error {
	return codec.WriteNumberedField(e, 1, m.JobID, 4, codec.EncodeUint16)
}

func decodeMID0039rev2(d *codec.Decoder) (Message, error) {
	id, err := codec.ReadNumberedField(d, 1, 4, codec.DecodeUint16)
	if err != nil {
		return nil, err
	}
	return MID0039rev2{JobID: id}, nil
}

func init() {
	register(30, 1, decodeMID0030rev1)
	register(31, 1, decodeMID0031rev1)
	register(31, 2, decodeMID0031rev2)
	register(32, 1, decodeMID0032rev1)
	register(32, 2, decodeMID0032rev2)
	register(33, 1, decodeMID0033rev1)
	register(34, 1, decodeMID0034rev1)
	register(35, 1, decodeMID0035rev1)
	register(36, 1, decodeMID0036rev1)
	register(37, 1, decodeMID0037rev1)
	register(38, 1, decodeMID0038rev1)
	register(38, 2, decodeMID0038rev2)
	register(39, 1, decodeMID0039rev1)
	register(39, 2, decodeMID0039rev2)
}
