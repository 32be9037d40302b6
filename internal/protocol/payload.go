package protocol

import "fmt"

// Envelope is the outer {op, body} wire shape before opcode-specific
// validation. It is what tolerant callers get back for unknown opcodes.
type Envelope struct {
	Op   Opcode
	Body map[string]any
}

// Payload is one concrete, validated payload kind.
type Payload interface {
	Opcode() Opcode
}

// EventPayload carries a validated gateway event.
type EventPayload struct {
	Event *Event
}

func (*EventPayload) Opcode() Opcode { return OpcodeEvent }

// PingPayload is a heartbeat. Any body is ignored.
type PingPayload struct{}

func (*PingPayload) Opcode() Opcode { return OpcodePing }

// PongPayload is a heartbeat acknowledgement. Any body is ignored.
type PongPayload struct{}

func (*PongPayload) Opcode() Opcode { return OpcodePong }

// Identify is the handshake body sent by a client.
type Identify struct {
	Token    *string
	Sequence *int64
}

// IdentifyPayload carries the client handshake.
type IdentifyPayload struct {
	Identify Identify
}

func (*IdentifyPayload) Opcode() Opcode { return OpcodeIdentify }

// Ready is the handshake acknowledgement body.
type Ready struct {
	Logins []Login
}

// ReadyPayload carries the handshake acknowledgement.
type ReadyPayload struct {
	Ready Ready
}

func (*ReadyPayload) Opcode() Opcode { return OpcodeReady }

// DecodePayload resolves a raw envelope into exactly one concrete payload
// kind, validating the body against the shape that opcode requires. Unknown
// opcodes fail with UnknownOpcodeError carrying the generic envelope.
func (d *Decoder) DecodePayload(raw map[string]any) (Payload, error) {
	rawOp, present := raw["op"]
	if !present || rawOp == nil {
		return nil, &MissingFieldError{Field: "op"}
	}
	n, ok := coerceInt64(rawOp)
	if !ok {
		return nil, &InvalidEnumError{Field: "op", Raw: rawOp}
	}
	op := Opcode(n)

	var body map[string]any
	if rawBody, set := raw["body"]; set && rawBody != nil {
		m, err := mapField("body", rawBody)
		if err != nil {
			return nil, err
		}
		body = m
	}

	if !op.known() {
		return nil, &UnknownOpcodeError{
			Raw:      rawOp,
			Envelope: &Envelope{Op: op, Body: body},
		}
	}

	switch op {
	case OpcodeEvent:
		if body == nil {
			return nil, &MissingBodyError{Op: op}
		}
		ev, err := d.DecodeEvent(body)
		if err != nil {
			return nil, wrapField("body", err)
		}
		return &EventPayload{Event: ev}, nil
	case OpcodePing:
		return &PingPayload{}, nil
	case OpcodePong:
		return &PongPayload{}, nil
	case OpcodeIdentify:
		ident, err := decodeIdentify(body)
		if err != nil {
			return nil, wrapField("body", err)
		}
		return &IdentifyPayload{Identify: *ident}, nil
	case OpcodeReady:
		ready, err := decodeReady(body)
		if err != nil {
			return nil, wrapField("body", err)
		}
		return &ReadyPayload{Ready: *ready}, nil
	}
	// op.known() covered every case above.
	return nil, &UnknownOpcodeError{Raw: rawOp, Envelope: &Envelope{Op: op, Body: body}}
}

// decodeIdentify validates the handshake body. Both fields are optional, so
// an absent body is treated as an empty map.
func decodeIdentify(raw map[string]any) (*Identify, error) {
	ident := &Identify{}
	for key, value := range raw {
		if value == nil {
			continue
		}
		switch key {
		case "token":
			s, err := optStringField(key, value)
			if err != nil {
				return nil, err
			}
			ident.Token = s
		case "sequence":
			n, ok := coerceInt64(value)
			if !ok {
				return nil, &InvalidFieldError{Field: key, Want: "integer", Raw: value}
			}
			ident.Sequence = &n
		}
	}
	return ident, nil
}

// decodeReady validates the handshake acknowledgement body; logins is
// mandatory, an empty list is fine.
func decodeReady(raw map[string]any) (*Ready, error) {
	rawLogins, present := raw["logins"]
	if !present || rawLogins == nil {
		return nil, &MissingFieldError{Field: "logins"}
	}
	list, ok := rawLogins.([]any)
	if !ok {
		return nil, &InvalidFieldError{Field: "logins", Want: "list", Raw: rawLogins}
	}
	ready := &Ready{Logins: make([]Login, 0, len(list))}
	for i, v := range list {
		m, ok := asMap(v)
		if !ok {
			return nil, &InvalidFieldError{Field: fmt.Sprintf("logins[%d]", i), Want: "object", Raw: v}
		}
		login, err := DecodeLogin(m)
		if err != nil {
			return nil, fmt.Errorf("logins[%d]: %w", i, err)
		}
		ready.Logins = append(ready.Logins, *login)
	}
	return ready, nil
}
