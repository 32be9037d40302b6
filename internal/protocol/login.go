package protocol

// Login describes one bot connection on the upstream platform. Open schema.
type Login struct {
	User     *User
	SelfID   *string
	Platform *string
	Status   LoginStatus
	Extra    map[string]any
}

// DecodeLogin validates a raw login object. Status is the only required field.
func DecodeLogin(raw map[string]any) (*Login, error) {
	l := &Login{}
	var haveStatus bool
	for key, value := range raw {
		if value == nil {
			continue
		}
		var err error
		switch key {
		case "user":
			l.User, err = decodeNested(key, value, DecodeUser)
		case "self_id":
			l.SelfID, err = optStringField(key, value)
		case "platform":
			l.Platform, err = optStringField(key, value)
		case "status":
			n, ok := coerceInt64(value)
			if !ok || !LoginStatus(n).known() {
				return nil, &InvalidEnumError{Field: key, Raw: value}
			}
			l.Status = LoginStatus(n)
			haveStatus = true
		default:
			if l.Extra == nil {
				l.Extra = make(map[string]any)
			}
			l.Extra[key] = value
		}
		if err != nil {
			return nil, err
		}
	}
	if !haveStatus {
		return nil, &MissingFieldError{Field: "status"}
	}
	return l, nil
}
