package capture

import (
	"bytes"
	"strings"
	"testing"

	"github.com/danmuck/floodnet/src/api/nodes"
)

func TestCoderRoundTrip(t *testing.T) {
	coder := DefaultCoder{}
	fields := map[string]interface{}{
		"receiver_id": 3,
		"sender_id":   2,
		"message":     "hi",
		"hop":         2,
	}

	encoded, err := coder.Encode(fields)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	got, err := coder.Decode(bytes.NewReader(encoded))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if asInt(got["receiver_id"]) != 3 || asInt(got["sender_id"]) != 2 {
		t.Fatalf("decoded ids = %v / %v, want 3 / 2", got["receiver_id"], got["sender_id"])
	}
	if asString(got["message"]) != "hi" {
		t.Fatalf("decoded message = %v, want hi", got["message"])
	}
}

func TestTraceRoundTrip(t *testing.T) {
	trace := &nodes.Trace{
		Origin:  1,
		Message: "hi",
		Deliveries: []nodes.Delivery{
			{ReceiverID: 3, SenderID: 2, Message: "hi", Hop: 2},
			{ReceiverID: 5, SenderID: 4, Message: "hi", Hop: 3},
		},
	}

	var buf bytes.Buffer
	if err := WriteTrace(&buf, trace); err != nil {
		t.Fatalf("WriteTrace failed: %v", err)
	}

	got, err := ReadTrace(&buf)
	if err != nil {
		t.Fatalf("ReadTrace failed: %v", err)
	}

	if got.Origin != trace.Origin || got.Message != trace.Message {
		t.Fatalf("trace header = %d/%q, want %d/%q", got.Origin, got.Message, trace.Origin, trace.Message)
	}
	if len(got.Deliveries) != len(trace.Deliveries) {
		t.Fatalf("decoded %d deliveries, want %d", len(got.Deliveries), len(trace.Deliveries))
	}
	for i, d := range trace.Deliveries {
		if got.Deliveries[i] != d {
			t.Fatalf("delivery %d = %+v, want %+v", i, got.Deliveries[i], d)
		}
	}
}

func TestEmptyTraceRoundTrip(t *testing.T) {
	trace := &nodes.Trace{Origin: 7, Message: "none"}

	var buf bytes.Buffer
	if err := WriteTrace(&buf, trace); err != nil {
		t.Fatalf("WriteTrace failed: %v", err)
	}

	got, err := ReadTrace(&buf)
	if err != nil {
		t.Fatalf("ReadTrace failed: %v", err)
	}
	if len(got.Deliveries) != 0 {
		t.Fatalf("decoded %d deliveries from an empty trace", len(got.Deliveries))
	}
}

func TestEncodeRejectsOversizedRecord(t *testing.T) {
	coder := DefaultCoder{}
	fields := map[string]interface{}{
		"message": strings.Repeat("x", 70000),
	}

	// a record past the 2-byte frame limit must fail loudly, not wrap around
	if _, err := coder.Encode(fields); err == nil {
		t.Fatalf("Encode accepted a record larger than the frame limit")
	}
}

func TestWriteTraceOversizedMessage(t *testing.T) {
	trace := &nodes.Trace{
		Origin:  1,
		Message: strings.Repeat("x", 70000),
	}

	var buf bytes.Buffer
	if err := WriteTrace(&buf, trace); err == nil {
		t.Fatalf("WriteTrace succeeded on a message too large to frame")
	}
	if buf.Len() != 0 {
		t.Fatalf("WriteTrace wrote %d bytes before failing, want 0", buf.Len())
	}
}

func TestReadTraceTruncatedStream(t *testing.T) {
	trace := &nodes.Trace{
		Origin:  1,
		Message: "hi",
		Deliveries: []nodes.Delivery{
			{ReceiverID: 3, SenderID: 2, Message: "hi", Hop: 1},
		},
	}

	var buf bytes.Buffer
	if err := WriteTrace(&buf, trace); err != nil {
		t.Fatalf("WriteTrace failed: %v", err)
	}

	truncated := buf.Bytes()[:buf.Len()-3]
	if _, err := ReadTrace(bytes.NewReader(truncated)); err == nil {
		t.Fatalf("ReadTrace accepted a truncated stream")
	}
}
