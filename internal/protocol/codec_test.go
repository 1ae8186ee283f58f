package protocol

import (
	"errors"
	"math"
	"testing"

	"github.com/aaronzipp/blobarena/internal/models"
)

func ptr(v float64) *float64 { return &v }

func TestCodecsCarryMoveIntent(t *testing.T) {
	for _, c := range []Codec{JSON, Msgpack} {
		t.Run(c.Name(), func(t *testing.T) {
			b, err := c.Encode(EventMove, Move{TargetX: ptr(12.5), TargetY: ptr(400)})
			if err != nil {
				t.Fatalf("encode: %v", err)
			}
			env, err := c.DecodeEnvelope(b)
			if err != nil {
				t.Fatalf("decode envelope: %v", err)
			}
			if env.Event != EventMove {
				t.Fatalf("event = %q, want %q", env.Event, EventMove)
			}
			mv, err := DecodePayload[Move](c, env)
			if err != nil {
				t.Fatalf("decode payload: %v", err)
			}
			x, y, err := mv.Target()
			if err != nil {
				t.Fatalf("target: %v", err)
			}
			if x != 12.5 || y != 400 {
				t.Fatalf("target = (%v, %v), want (12.5, 400)", x, y)
			}
		})
	}
}

func TestCodecsCarryUpdate(t *testing.T) {
	update := Update{
		Players: []models.Player{{ID: "p1", X: 1, Y: 2, Size: 20, Color: "#ff0000"}},
		Foods:   []models.Food{{ID: 7, X: 3, Y: 4, Color: "#00ff00"}},
	}
	for _, c := range []Codec{JSON, Msgpack} {
		t.Run(c.Name(), func(t *testing.T) {
			b, err := c.Encode(EventUpdate, update)
			if err != nil {
				t.Fatalf("encode: %v", err)
			}
			env, err := c.DecodeEnvelope(b)
			if err != nil {
				t.Fatalf("decode envelope: %v", err)
			}
			got, err := DecodePayload[Update](c, env)
			if err != nil {
				t.Fatalf("decode payload: %v", err)
			}
			if len(got.Players) != 1 || got.Players[0] != update.Players[0] {
				t.Fatalf("players = %+v", got.Players)
			}
			if len(got.Foods) != 1 || got.Foods[0] != update.Foods[0] {
				t.Fatalf("foods = %+v", got.Foods)
			}
		})
	}
}

func TestJSONWireShape(t *testing.T) {
	b, err := JSON.Encode(EventPlayerEaten, PlayerRef{ID: "abc"})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	want := `{"event":"playerEaten","data":{"id":"abc"}}`
	if string(b) != want {
		t.Fatalf("wire = %s, want %s", b, want)
	}
}

func TestMoveTargetRejectsMalformed(t *testing.T) {
	cases := map[string]string{
		"missing y":   `{"event":"move","data":{"targetX":5}}`,
		"missing x":   `{"event":"move","data":{"targetY":5}}`,
		"null fields": `{"event":"move","data":{"targetX":null,"targetY":null}}`,
	}
	for name, frame := range cases {
		t.Run(name, func(t *testing.T) {
			env, err := JSON.DecodeEnvelope([]byte(frame))
			if err != nil {
				t.Fatalf("decode envelope: %v", err)
			}
			mv, err := DecodePayload[Move](JSON, env)
			if err != nil {
				t.Fatalf("decode payload: %v", err)
			}
			if _, _, err := mv.Target(); !errors.Is(err, ErrInvalidIntent) {
				t.Fatalf("err = %v, want ErrInvalidIntent", err)
			}
		})
	}
}

func TestMoveTargetRejectsNonFinite(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		mv := Move{TargetX: ptr(v), TargetY: ptr(1)}
		if _, _, err := mv.Target(); !errors.Is(err, ErrInvalidIntent) {
			t.Fatalf("target %v accepted", v)
		}
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	if _, err := JSON.DecodeEnvelope(nil); err == nil {
		t.Fatalf("expected error for empty frame")
	}
	if _, err := JSON.DecodeEnvelope([]byte("{nope")); err == nil {
		t.Fatalf("expected error for invalid json")
	}
	if _, err := DecodePayload[Move](JSON, Envelope{Event: EventMove}); err == nil {
		t.Fatalf("expected error for empty payload")
	}
}

func TestCodecFor(t *testing.T) {
	if c, err := CodecFor(""); err != nil || c != JSON {
		t.Fatalf("default codec = %v, %v", c, err)
	}
	if c, err := CodecFor("msgpack"); err != nil || !c.Binary() {
		t.Fatalf("msgpack codec = %v, %v", c, err)
	}
	if _, err := CodecFor("xml"); err == nil {
		t.Fatalf("expected error for unknown codec")
	}
}
