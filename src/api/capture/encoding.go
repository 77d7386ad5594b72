package capture

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/danmuck/floodnet/src/api/nodes"
)

// Coder frames single broadcast records for capture streams
type Coder interface {
	Encode(fields map[string]interface{}) ([]byte, error)
	Decode(r io.Reader) (map[string]interface{}, error)
}

// DefaultCoder marshals records as protobuf Structs behind a 2-byte
// big-endian length header.
type DefaultCoder struct{}

func (c DefaultCoder) Encode(fields map[string]interface{}) ([]byte, error) {
	record, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to build record: %w", err)
	}
	out, err := proto.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal record: %w", err)
	}
	if len(out) > math.MaxUint16 {
		// the length header is 2 bytes, larger records cannot be framed
		return nil, fmt.Errorf("record too large for frame: %d bytes", len(out))
	}
	hdr := make([]byte, 2)
	binary.BigEndian.PutUint16(hdr, uint16(len(out)))
	out = append(hdr, out...)

	return out, nil
}

func (c DefaultCoder) Decode(r io.Reader) (map[string]interface{}, error) {
	// Get the header if the stream is valid, and convert to uint16
	headerBuf := make([]byte, 2)
	if _, err := io.ReadFull(r, headerBuf); err != nil {
		return nil, err
	}

	// Get the record using the header value
	msgLength := binary.BigEndian.Uint16(headerBuf[:])
	msgBuf := make([]byte, int(msgLength))
	if _, err := io.ReadFull(r, msgBuf); err != nil {
		return nil, fmt.Errorf("failed to read record body: %w", err)
	}

	record := &structpb.Struct{}
	if err := proto.Unmarshal(msgBuf, record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal record: %w", err)
	}

	return record.AsMap(), nil
}

// WriteTrace streams a broadcast trace as one header record followed by one
// record per delivery.
func WriteTrace(w io.Writer, trace *nodes.Trace) error {
	coder := DefaultCoder{}

	header, err := coder.Encode(map[string]interface{}{
		"origin":     trace.Origin,
		"message":    trace.Message,
		"deliveries": len(trace.Deliveries),
	})
	if err != nil {
		return err
	}
	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write trace header: %w", err)
	}

	for _, d := range trace.Deliveries {
		record, err := coder.Encode(map[string]interface{}{
			"receiver_id": d.ReceiverID,
			"sender_id":   d.SenderID,
			"message":     d.Message,
			"hop":         d.Hop,
		})
		if err != nil {
			return err
		}
		if _, err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write delivery record: %w", err)
		}
	}
	return nil
}

// ReadTrace rebuilds a trace written by WriteTrace.
func ReadTrace(r io.Reader) (*nodes.Trace, error) {
	coder := DefaultCoder{}

	header, err := coder.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read trace header: %w", err)
	}
	trace := &nodes.Trace{
		Origin:  asInt(header["origin"]),
		Message: asString(header["message"]),
	}

	count := asInt(header["deliveries"])
	for i := 0; i < count; i++ {
		fields, err := coder.Decode(r)
		if err != nil {
			return nil, fmt.Errorf("failed to read delivery record %d: %w", i, err)
		}
		trace.Deliveries = append(trace.Deliveries, nodes.Delivery{
			ReceiverID: asInt(fields["receiver_id"]),
			SenderID:   asInt(fields["sender_id"]),
			Message:    asString(fields["message"]),
			Hop:        asInt(fields["hop"]),
		})
	}
	return trace, nil
}

// Struct fields come back as float64 regardless of what went in
func asInt(v interface{}) int {
	f, ok := v.(float64)
	if !ok {
		return 0
	}
	return int(f)
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}
