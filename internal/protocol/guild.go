package protocol

// Guild is the community a channel belongs to. Open schema.
type Guild struct {
	ID     string
	Name   string
	Avatar *string
	Extra  map[string]any
}

// DecodeGuild validates a raw guild object.
func DecodeGuild(raw map[string]any) (*Guild, error) {
	g := &Guild{}
	var haveID, haveName bool
	for key, value := range raw {
		if value == nil {
			continue
		}
		var err error
		switch key {
		case "id":
			g.ID, err = stringField(key, value)
			haveID = err == nil
		case "name":
			g.Name, err = stringField(key, value)
			haveName = err == nil
		case "avatar":
			g.Avatar, err = optStringField(key, value)
		default:
			if g.Extra == nil {
				g.Extra = make(map[string]any)
			}
			g.Extra[key] = value
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
	return g, nil
}
