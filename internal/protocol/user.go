package protocol

// User is an account on the upstream platform. Open schema.
type User struct {
	ID     string
	Name   *string
	Avatar *string
	IsBot  *bool
	Extra  map[string]any
}

// DecodeUser validates a raw user object.
func DecodeUser(raw map[string]any) (*User, error) {
	u := &User{}
	var haveID bool
	for key, value := range raw {
		if value == nil {
			continue
		}
		var err error
		switch key {
		case "id":
			u.ID, err = stringField(key, value)
			haveID = err == nil
		case "name":
			u.Name, err = optStringField(key, value)
		case "avatar":
			u.Avatar, err = optStringField(key, value)
		case "is_bot":
			u.IsBot, err = boolField(key, value)
		default:
			if u.Extra == nil {
				u.Extra = make(map[string]any)
			}
			u.Extra[key] = value
		}
		if err != nil {
			return nil, err
		}
	}
	if !haveID {
		return nil, &MissingFieldError{Field: "id"}
	}
	return u, nil
}
