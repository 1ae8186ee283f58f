package protocol

import (
	"encoding/json"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// Codec converts envelopes to and from one wire format
type Codec interface {
	Name() string
	Binary() bool
	Encode(event string, payload any) ([]byte, error)
	DecodeEnvelope(b []byte) (Envelope, error)
	DecodePayload(env Envelope, v any) error
}

var (
	// JSON sends envelopes as text frames
	JSON Codec = jsonCodec{}
	// Msgpack sends envelopes as binary frames
	Msgpack Codec = msgpackCodec{}
)

// CodecFor picks a codec by name, defaulting to JSON
func CodecFor(name string) (Codec, error) {
	switch name {
	case "", "json":
		return JSON, nil
	case "msgpack":
		return Msgpack, nil
	default:
		return nil, fmt.Errorf("unknown codec %q", name)
	}
}

// DecodePayload decodes an envelope's payload into a fresh T
func DecodePayload[T any](c Codec, env Envelope) (T, error) {
	var out T
	if len(env.Data) == 0 {
		return out, fmt.Errorf("empty payload for event %q", env.Event)
	}
	err := c.DecodePayload(env, &out)
	return out, err
}

type jsonCodec struct{}

type jsonEnvelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

func (jsonCodec) Name() string { return "json" }
func (jsonCodec) Binary() bool { return false }

func (jsonCodec) Encode(event string, payload any) ([]byte, error) {
	if event == "" {
		return nil, fmt.Errorf("encode: empty event name")
	}
	if payload == nil {
		return nil, fmt.Errorf("encode %s: nil payload", event)
	}
	pb, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode %s payload: %w", event, err)
	}
	return json.Marshal(jsonEnvelope{Event: event, Data: pb})
}

func (jsonCodec) DecodeEnvelope(b []byte) (Envelope, error) {
	if len(b) == 0 {
		return Envelope{}, fmt.Errorf("decode envelope: empty frame")
	}
	var e jsonEnvelope
	if err := json.Unmarshal(b, &e); err != nil {
		return Envelope{}, fmt.Errorf("decode envelope: %w", err)
	}
	return Envelope{Event: e.Event, Data: e.Data}, nil
}

func (jsonCodec) DecodePayload(env Envelope, v any) error {
	return json.Unmarshal(env.Data, v)
}

type msgpackCodec struct{}

type msgpackEnvelope struct {
	Event string             `msgpack:"event"`
	Data  msgpack.RawMessage `msgpack:"data"`
}

func (msgpackCodec) Name() string { return "msgpack" }
func (msgpackCodec) Binary() bool { return true }

func (msgpackCodec) Encode(event string, payload any) ([]byte, error) {
	if event == "" {
		return nil, fmt.Errorf("encode: empty event name")
	}
	if payload == nil {
		return nil, fmt.Errorf("encode %s: nil payload", event)
	}
	pb, err := msgpack.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode %s payload: %w", event, err)
	}
	return msgpack.Marshal(&msgpackEnvelope{Event: event, Data: pb})
}

func (msgpackCodec) DecodeEnvelope(b []byte) (Envelope, error) {
	if len(b) == 0 {
		return Envelope{}, fmt.Errorf("decode envelope: empty frame")
	}
	var e msgpackEnvelope
	if err := msgpack.Unmarshal(b, &e); err != nil {
		return Envelope{}, fmt.Errorf("decode envelope: %w", err)
	}
	return Envelope{Event: e.Event, Data: e.Data}, nil
}

func (msgpackCodec) DecodePayload(env Envelope, v any) error {
	return msgpack.Unmarshal(env.Data, v)
}
