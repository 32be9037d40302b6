package protocol

// Role is a guild role. Open schema.
type Role struct {
	ID    string
	Name  string
	Extra map[string]any
}

// DecodeRole validates a raw role object.
func DecodeRole(raw map[string]any) (*Role, error) {
	r := &Role{}
	var haveID, haveName bool
	for key, value := range raw {
		if value == nil {
			continue
		}
		var err error
		switch key {
		case "id":
			r.ID, err = stringField(key, value)
			haveID = err == nil
		case "name":
			r.Name, err = stringField(key, value)
			haveName = err == nil
		default:
			if r.Extra == nil {
				r.Extra = make(map[string]any)
			}
			r.Extra[key] = value
		}
		if err != nil {
			return nil, err
		}
	}
	if !haveID {
		return nil, &MissingFieldError{Field: "id"}
	}
	if !haveName {
		return nil, &MissingFieldError{Field: "name"}
	}
	return r, nil
}
