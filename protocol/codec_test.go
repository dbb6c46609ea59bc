package protocol

import "testing"

func TestEncodeDecodeRoundTrip(t *testing.T) {
	in := State{
		Tick:   42,
		Active: true,
		Score:  3,
		Objects: []ObjectSnapshot{
			{ID: 7, Kind: "watermelon", X: 33.5, Y: 48.2},
			{ID: 9, Kind: "bomb", X: 60, Y: 12, Sliced: true},
		},
	}
	b, err := Encode(MsgState, in)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	env, err := DecodeEnvelope(b)
	if err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if env.T != MsgState {
		t.Fatalf("envelope type = %q, want %q", env.T, MsgState)
	}
	out, err := DecodePayload[State](env)
	if err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if out.Tick != in.Tick || out.Score != in.Score || !out.Active {
		t.Fatalf("round trip lost fields: %+v", out)
	}
	if len(out.Objects) != 2 || out.Objects[1].Kind != "bomb" || !out.Objects[1].Sliced {
		t.Fatalf("round trip lost objects: %+v", out.Objects)
	}
}

func TestEncodeRejectsBadInput(t *testing.T) {
	if _, err := Encode("", Hello{}); err == nil {
		t.Fatalf("expected error for empty envelope type")
	}
	if _, err := Encode(MsgHello, nil); err == nil {
		t.Fatalf("expected error for nil payload")
	}
}

func TestDecodeRejectsBadInput(t *testing.T) {
	if _, err := DecodeEnvelope(nil); err == nil {
		t.Fatalf("expected error for empty message")
	}
	if _, err := DecodeEnvelope([]byte("{not json")); err == nil {
		t.Fatalf("expected error for malformed json")
	}
	if _, err := DecodePayload[Hello](Envelope{T: MsgHello}); err == nil {
		t.Fatalf("expected error for empty payload")
	}
}

func TestBroadcastDividesTickRate(t *testing.T) {
	if SimTickHz%BroadcastHz != 0 {
		t.Fatalf("SimTickHz %% BroadcastHz != 0 (%d %% %d)", SimTickHz, BroadcastHz)
	}
}
