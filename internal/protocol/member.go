package protocol

import "time"

// Member is the tolerant tier of guild membership data: every field may be
// absent, so a bare reference embedded in an event about someone else still
// validates. Open schema.
type Member struct {
	User     *User
	Name     *string
	Avatar   *string
	JoinedAt *time.Time
	Extra    map[string]any
}

// FullMember is the strict tier: user and join time are guaranteed. Sources
// that carry complete membership data (a member-join event) decode through
// here; everything else stays on Member.
type FullMember struct {
	User     User
	Name     *string
	Avatar   *string
	JoinedAt time.Time
	Extra    map[string]any
}

// DecodeMember validates a raw member object at the tolerant tier.
func DecodeMember(raw map[string]any) (*Member, error) {
	m := &Member{}
	for key, value := range raw {
		if value == nil {
			continue
		}
		var err error
		switch key {
		case "user":
			m.User, err = decodeNested(key, value, DecodeUser)
		case "name":
			m.Name, err = optStringField(key, value)
		case "avatar":
			m.Avatar, err = optStringField(key, value)
		case "joined_at":
			m.JoinedAt, err = timestampField(key, value)
		default:
			if m.Extra == nil {
				m.Extra = make(map[string]any)
			}
			m.Extra[key] = value
		}
		if err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Full upgrades the tolerant tier to the strict one. It fails with
// MissingFieldError for the first mandatory field that is absent; a FullMember
// is never built any other way.
func (m *Member) Full() (*FullMember, error) {
	if m.User == nil {
		return nil, &MissingFieldError{Field: "user"}
	}
	if m.JoinedAt == nil {
		return nil, &MissingFieldError{Field: "joined_at"}
	}
	return &FullMember{
		User:     *m.User,
		Name:     m.Name,
		Avatar:   m.Avatar,
		JoinedAt: *m.JoinedAt,
		Extra:    m.Extra,
	}, nil
}

// DecodeFullMember validates a raw member object at the strict tier.
func DecodeFullMember(raw map[string]any) (*FullMember, error) {
	m, err := DecodeMember(raw)
	if err != nil {
		return nil, err
	}
	return m.Full()
}
