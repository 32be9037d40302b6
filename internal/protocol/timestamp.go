package protocol

import "time"

// normalizeTimestamp converts a raw wire value into an absolute point in time.
// The wire carries timestamps as integer milliseconds since the Unix epoch;
// an already-normalized time.Time passes through unchanged and null yields nil.
//
// Every timestamp field in the protocol (member join, message created/updated,
// event timestamp) goes through this one routine.
func normalizeTimestamp(v any) (*time.Time, error) {
	if v == nil {
		return nil, nil
	}
	if t, ok := v.(time.Time); ok {
		return &t, nil
	}
	ms, ok := coerceInt64(v)
	if !ok {
		return nil, &InvalidTimestampError{Raw: v}
	}
	t := time.UnixMilli(ms)
	return &t, nil
}

// timestampField attaches the field name to normalization failures.
func timestampField(field string, v any) (*time.Time, error) {
	t, err := normalizeTimestamp(v)
	if err != nil {
		return nil, wrapField(field, err)
	}
	return t, nil
}
