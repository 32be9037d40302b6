package protocol

import "fmt"

// InvalidTimestampError indicates a raw timestamp value that is not
// integer-convertible.
type InvalidTimestampError struct {
	Raw any
}

func (e *InvalidTimestampError) Error() string {
	return fmt.Sprintf("protocol: invalid timestamp: %v", e.Raw)
}

// InvalidContentError indicates a content field that is neither a string nor
// an element sequence.
type InvalidContentError struct {
	Raw any
}

func (e *InvalidContentError) Error() string {
	return fmt.Sprintf("protocol: invalid content type: %T", e.Raw)
}

// InvalidEnumError indicates an enumerated field whose raw value is outside
// the known integer set.
type InvalidEnumError struct {
	Field string
	Raw   any
}

func (e *InvalidEnumError) Error() string {
	return fmt.Sprintf("protocol: field %q: invalid enum value %v", e.Field, e.Raw)
}

// InvalidFieldError indicates a field whose raw value could not be coerced to
// the declared type.
type InvalidFieldError struct {
	Field string
	Want  string
	Raw   any
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("protocol: field %q: want %s, got %v (%T)", e.Field, e.Want, e.Raw, e.Raw)
}

// MissingFieldError indicates a required key absent from the raw map.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("protocol: missing required field %q", e.Field)
}

// MissingBodyError indicates an opcode that requires a body arrived without one.
type MissingBodyError struct {
	Op Opcode
}

func (e *MissingBodyError) Error() string {
	return fmt.Sprintf("protocol: missing body for opcode %s", e.Op)
}

// UnknownOpcodeError indicates an envelope whose opcode is outside the known
// set. Envelope carries the generic decoded shape so tolerant callers can skip
// the payload instead of aborting the session.
type UnknownOpcodeError struct {
	Raw      any
	Envelope *Envelope
}

func (e *UnknownOpcodeError) Error() string {
	return fmt.Sprintf("protocol: unknown opcode %v", e.Raw)
}
