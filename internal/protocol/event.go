package protocol

import "time"

// Event is the richest entity on the wire: the envelope body of every
// OpcodeEvent payload. Which optional sub-entities are populated is an
// upstream convention keyed by Type; this layer validates whatever arrived
// and leaves the convention to the caller. Open schema.
type Event struct {
	ID        int64
	Type      string
	Platform  string
	SelfID    string
	Timestamp time.Time
	Channel   *Channel
	Guild     *Guild
	Login     *Login
	Member    *Member
	Message   *Message
	Operator  *User
	Role      *Role
	User      *User
	Extra     map[string]any
}

// DecodeEvent validates a raw event object. The id, type, platform, self_id
// and timestamp fields are mandatory; everything else is independently
// optional, with a missing key equivalent to an explicit null.
func (d *Decoder) DecodeEvent(raw map[string]any) (*Event, error) {
	ev := &Event{}
	var haveID, haveType, havePlatform, haveSelfID, haveTimestamp bool
	for key, value := range raw {
		if value == nil {
			continue
		}
		var err error
		switch key {
		case "id":
			n, ok := coerceInt64(value)
			if !ok {
				return nil, &InvalidFieldError{Field: key, Want: "integer", Raw: value}
			}
			ev.ID = n
			haveID = true
		case "type":
			ev.Type, err = stringField(key, value)
			haveType = err == nil
		case "platform":
			ev.Platform, err = stringField(key, value)
			havePlatform = err == nil
		case "self_id":
			ev.SelfID, err = stringField(key, value)
			haveSelfID = err == nil
		case "timestamp":
			var ts *time.Time
			ts, err = timestampField(key, value)
			if err == nil && ts != nil {
				ev.Timestamp = *ts
				haveTimestamp = true
			}
		case "channel":
			ev.Channel, err = decodeNested(key, value, DecodeChannel)
		case "guild":
			ev.Guild, err = decodeNested(key, value, DecodeGuild)
		case "login":
			ev.Login, err = decodeNested(key, value, DecodeLogin)
		case "member":
			// Tolerant tier on purpose: an event about someone else may
			// carry only a member reference. Strict decoding is the
			// call site's choice via DecodeFullMember.
			ev.Member, err = decodeNested(key, value, DecodeMember)
		case "message":
			ev.Message, err = decodeNested(key, value, d.DecodeMessage)
		case "operator":
			ev.Operator, err = decodeNested(key, value, DecodeUser)
		case "role":
			ev.Role, err = decodeNested(key, value, DecodeRole)
		case "user":
			ev.User, err = decodeNested(key, value, DecodeUser)
		default:
			if ev.Extra == nil {
				ev.Extra = make(map[string]any)
			}
			ev.Extra[key] = value
		}
		if err != nil {
			return nil, err
		}
	}
	switch {
	case !haveID:
		return nil, &MissingFieldError{Field: "id"}
	case !haveType:
		return nil, &MissingFieldError{Field: "type"}
	case !havePlatform:
		return nil, &MissingFieldError{Field: "platform"}
	case !haveSelfID:
		return nil, &MissingFieldError{Field: "self_id"}
	case !haveTimestamp:
		return nil, &MissingFieldError{Field: "timestamp"}
	}
	return ev, nil
}
