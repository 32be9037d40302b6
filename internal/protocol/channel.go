package protocol

// Channel is a place messages are delivered to. The schema is open: keys the
// protocol does not know about are kept verbatim in Extra.
type Channel struct {
	ID       string
	Name     *string
	Type     ChannelType
	ParentID *string
	Extra    map[string]any
}

// DecodeChannel validates a raw channel object.
func DecodeChannel(raw map[string]any) (*Channel, error) {
	ch := &Channel{}
	var haveID, haveType bool
	for key, value := range raw {
		if value == nil {
			continue
		}
		var err error
		switch key {
		case "id":
			ch.ID, err = stringField(key, value)
			haveID = err == nil
		case "name":
			ch.Name, err = optStringField(key, value)
		case "type":
			n, ok := coerceInt64(value)
			if !ok || !ChannelType(n).known() {
				return nil, &InvalidEnumError{Field: key, Raw: value}
			}
			ch.Type = ChannelType(n)
			haveType = true
		case "parent_id":
			ch.ParentID, err = optStringField(key, value)
		default:
			if ch.Extra == nil {
				ch.Extra = make(map[string]any)
			}
			ch.Extra[key] = value
		}
		if err != nil {
			return nil, err
		}
	}
	if !haveID {
		return nil, &MissingFieldError{Field: "id"}
	}
	if !haveType {
		return nil, &MissingFieldError{Field: "type"}
	}
	return ch, nil
}
