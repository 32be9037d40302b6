package protocol

import (
	"errors"
	"reflect"
	"testing"

	"github.com/goccy/go-json"
)

func TestDecodePayloadEvent(t *testing.T) {
	dec := NewDecoder()
	payload, err := dec.DecodePayload(map[string]any{
		"op":   json.Number("0"),
		"body": fullEventRaw(),
	})
	if err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	ep, ok := payload.(*EventPayload)
	if !ok {
		t.Fatalf("expected EventPayload, got %T", payload)
	}
	if ep.Opcode() != OpcodeEvent || ep.Event.ID != 100 {
		t.Fatalf("unexpected payload: %+v", ep)
	}
}

func TestDecodePayloadEventMissingBody(t *testing.T) {
	dec := NewDecoder()
	for _, raw := range []map[string]any{
		{"op": json.Number("0")},
		{"op": json.Number("0"), "body": nil},
	} {
		_, err := dec.DecodePayload(raw)
		var missing *MissingBodyError
		if !errors.As(err, &missing) || missing.Op != OpcodeEvent {
			t.Fatalf("expected MissingBodyError, got %v", err)
		}
	}
}

func TestDecodePayloadPingIgnoresBody(t *testing.T) {
	dec := NewDecoder()
	for _, body := range []any{nil, map[string]any{"junk": []any{true, "x"}}} {
		raw := map[string]any{"op": json.Number("1")}
		if body != nil {
			raw["body"] = body
		}
		payload, err := dec.DecodePayload(raw)
		if err != nil {
			t.Fatalf("decode ping: %v", err)
		}
		if _, ok := payload.(*PingPayload); !ok {
			t.Fatalf("expected PingPayload, got %T", payload)
		}
	}
}

func TestDecodePayloadPong(t *testing.T) {
	dec := NewDecoder()
	payload, err := dec.DecodePayload(map[string]any{"op": json.Number("2")})
	if err != nil {
		t.Fatalf("decode pong: %v", err)
	}
	if payload.Opcode() != OpcodePong {
		t.Fatalf("unexpected opcode: %v", payload.Opcode())
	}
}

func TestDecodePayloadIdentify(t *testing.T) {
	dec := NewDecoder()
	payload, err := dec.DecodePayload(map[string]any{
		"op":   json.Number("3"),
		"body": map[string]any{"token": "secret", "sequence": json.Number("42")},
	})
	if err != nil {
		t.Fatalf("decode identify: %v", err)
	}
	ip, ok := payload.(*IdentifyPayload)
	if !ok {
		t.Fatalf("expected IdentifyPayload, got %T", payload)
	}
	if *ip.Identify.Token != "secret" || *ip.Identify.Sequence != 42 {
		t.Fatalf("unexpected identify: %+v", ip.Identify)
	}
}

func TestDecodePayloadIdentifyWithoutBody(t *testing.T) {
	dec := NewDecoder()
	payload, err := dec.DecodePayload(map[string]any{"op": json.Number("3")})
	if err != nil {
		t.Fatalf("decode identify: %v", err)
	}
	ip := payload.(*IdentifyPayload)
	if ip.Identify.Token != nil || ip.Identify.Sequence != nil {
		t.Fatalf("expected empty identify, got %+v", ip.Identify)
	}
}

func TestDecodePayloadReady(t *testing.T) {
	dec := NewDecoder()
	payload, err := dec.DecodePayload(map[string]any{
		"op": json.Number("4"),
		"body": map[string]any{
			"logins": []any{
				map[string]any{"status": json.Number("1"), "platform": "discord"},
			},
		},
	})
	if err != nil {
		t.Fatalf("decode ready: %v", err)
	}
	rp := payload.(*ReadyPayload)
	if len(rp.Ready.Logins) != 1 || rp.Ready.Logins[0].Status != StatusOnline {
		t.Fatalf("unexpected ready: %+v", rp.Ready)
	}
}

func TestDecodePayloadReadyEmptyLogins(t *testing.T) {
	dec := NewDecoder()
	payload, err := dec.DecodePayload(map[string]any{
		"op":   json.Number("4"),
		"body": map[string]any{"logins": []any{}},
	})
	if err != nil {
		t.Fatalf("decode ready: %v", err)
	}
	rp := payload.(*ReadyPayload)
	if rp.Ready.Logins == nil || len(rp.Ready.Logins) != 0 {
		t.Fatalf("expected empty logins sequence, got %+v", rp.Ready.Logins)
	}
}

func TestDecodePayloadReadyMissingLogins(t *testing.T) {
	dec := NewDecoder()
	for _, raw := range []map[string]any{
		{"op": json.Number("4")},
		{"op": json.Number("4"), "body": map[string]any{}},
	} {
		_, err := dec.DecodePayload(raw)
		var missing *MissingFieldError
		if !errors.As(err, &missing) || missing.Field != "logins" {
			t.Fatalf("expected missing logins, got %v", err)
		}
	}
}

func TestDecodePayloadUnknownOpcode(t *testing.T) {
	dec := NewDecoder()
	body := map[string]any{"anything": true}
	_, err := dec.DecodePayload(map[string]any{"op": json.Number("255"), "body": body})

	var unknown *UnknownOpcodeError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownOpcodeError, got %v", err)
	}
	if unknown.Raw != json.Number("255") {
		t.Fatalf("expected raw value preserved, got %v", unknown.Raw)
	}
	if unknown.Envelope == nil || unknown.Envelope.Op != Opcode(255) ||
		!reflect.DeepEqual(unknown.Envelope.Body, body) {
		t.Fatalf("expected generic envelope, got %+v", unknown.Envelope)
	}
}

func TestDecodePayloadMissingOp(t *testing.T) {
	dec := NewDecoder()
	for _, raw := range []map[string]any{{}, {"op": nil}} {
		_, err := dec.DecodePayload(raw)
		var missing *MissingFieldError
		if !errors.As(err, &missing) || missing.Field != "op" {
			t.Fatalf("expected missing op, got %v", err)
		}
	}
}

func TestDecodePayloadNonIntegerOp(t *testing.T) {
	dec := NewDecoder()
	_, err := dec.DecodePayload(map[string]any{"op": "EVENT"})
	var enumErr *InvalidEnumError
	if !errors.As(err, &enumErr) || enumErr.Field != "op" {
		t.Fatalf("expected InvalidEnumError for op, got %v", err)
	}
}

func TestDecodePayloadBodyNotObject(t *testing.T) {
	dec := NewDecoder()
	_, err := dec.DecodePayload(map[string]any{"op": json.Number("0"), "body": "junk"})
	var field *InvalidFieldError
	if !errors.As(err, &field) || field.Field != "body" {
		t.Fatalf("expected invalid body, got %v", err)
	}
}

func TestDecodeBytes(t *testing.T) {
	dec := NewDecoder()
	data := []byte(`{"op":0,"body":{"id":9007199254740993,"type":"message-created",` +
		`"platform":"discord","self_id":"bot1","timestamp":1703239200123,` +
		`"message":{"id":"m1","content":"hello"}}}`)

	payload, err := dec.DecodeBytes(data)
	if err != nil {
		t.Fatalf("decode bytes: %v", err)
	}
	ep := payload.(*EventPayload)
	if ep.Event.ID != 9007199254740993 {
		t.Fatalf("large id mangled: %d", ep.Event.ID)
	}
	if ep.Event.Message.Content[0].Attrs["text"] != "hello" {
		t.Fatalf("unexpected content: %+v", ep.Event.Message.Content)
	}
}

func TestDecodeBytesMalformedJSON(t *testing.T) {
	dec := NewDecoder()
	if _, err := dec.DecodeBytes([]byte(`{"op":`)); err == nil {
		t.Fatalf("expected unmarshal error")
	}
}

func TestDecodeBytesTwiceYieldsEqualValues(t *testing.T) {
	dec := NewDecoder()
	data := []byte(`{"op":4,"body":{"logins":[{"status":2,"self_id":"bot1"}]}}`)

	first, err := dec.DecodeBytes(data)
	if err != nil {
		t.Fatalf("first decode: %v", err)
	}
	second, err := dec.DecodeBytes(data)
	if err != nil {
		t.Fatalf("second decode: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated decode diverged")
	}
}
