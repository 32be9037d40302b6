package protocol

import (
	"time"

	"satorigw/internal/protocol/element"
)

// missingContentSentinel is substituted when a message arrives without any
// content field. Known upstream server bug; see DecodeMessage.
const missingContentSentinel = "Unknown"

// Message is the tolerant tier of a chat message: only the id and content are
// guaranteed. Open schema.
type Message struct {
	ID        string
	Content   []element.Element
	Channel   *Channel
	Guild     *Guild
	Member    *Member
	User      *User
	CreatedAt *time.Time
	UpdatedAt *time.Time
	Extra     map[string]any
}

// FullMessage is the strict tier: every contextual field is guaranteed.
// The member stays at the tolerant tier even here.
type FullMessage struct {
	ID        string
	Content   []element.Element
	Channel   Channel
	Guild     Guild
	Member    Member
	User      User
	CreatedAt time.Time
	UpdatedAt time.Time
	Extra     map[string]any
}

// DecodeMessage validates a raw message object at the tolerant tier.
//
// A payload missing the content key entirely is not rejected: some servers
// ship message events without it, so the sentinel string is substituted and a
// warning goes to the diagnostic sink. No other field gets this leniency.
func (d *Decoder) DecodeMessage(raw map[string]any) (*Message, error) {
	msg := &Message{}
	var haveID, haveContent bool
	for key, value := range raw {
		if value == nil {
			continue
		}
		var err error
		switch key {
		case "id":
			msg.ID, err = stringField(key, value)
			haveID = err == nil
		case "content":
			msg.Content, err = d.normalizeContent(value)
			haveContent = err == nil
		case "channel":
			msg.Channel, err = decodeNested(key, value, DecodeChannel)
		case "guild":
			msg.Guild, err = decodeNested(key, value, DecodeGuild)
		case "member":
			msg.Member, err = decodeNested(key, value, DecodeMember)
		case "user":
			msg.User, err = decodeNested(key, value, DecodeUser)
		case "created_at":
			msg.CreatedAt, err = timestampField(key, value)
		case "updated_at":
			msg.UpdatedAt, err = timestampField(key, value)
		default:
			if msg.Extra == nil {
				msg.Extra = make(map[string]any)
			}
			msg.Extra[key] = value
		}
		if err != nil {
			return nil, err
		}
	}
	if rawContent, present := raw["content"]; !present {
		// Degrade, don't fail: substitute the sentinel and say so once.
		d.log.Warn().Msg("received message without content, this may be caused by a bug of the server")
		content, err := d.normalizeContent(missingContentSentinel)
		if err != nil {
			return nil, err
		}
		msg.Content = content
	} else if rawContent == nil && !haveContent {
		// An explicit null is not the missing-key quirk; reject it.
		return nil, &InvalidContentError{Raw: nil}
	}
	if !haveID {
		return nil, &MissingFieldError{Field: "id"}
	}
	return msg, nil
}

// Full upgrades the tolerant tier to the strict one, failing with
// MissingFieldError for the first mandatory field that is absent.
func (msg *Message) Full() (*FullMessage, error) {
	switch {
	case msg.Channel == nil:
		return nil, &MissingFieldError{Field: "channel"}
	case msg.Guild == nil:
		return nil, &MissingFieldError{Field: "guild"}
	case msg.Member == nil:
		return nil, &MissingFieldError{Field: "member"}
	case msg.User == nil:
		return nil, &MissingFieldError{Field: "user"}
	case msg.CreatedAt == nil:
		return nil, &MissingFieldError{Field: "created_at"}
	case msg.UpdatedAt == nil:
		return nil, &MissingFieldError{Field: "updated_at"}
	}
	return &FullMessage{
		ID:        msg.ID,
		Content:   msg.Content,
		Channel:   *msg.Channel,
		Guild:     *msg.Guild,
		Member:    *msg.Member,
		User:      *msg.User,
		CreatedAt: *msg.CreatedAt,
		UpdatedAt: *msg.UpdatedAt,
		Extra:     msg.Extra,
	}, nil
}

// DecodeFullMessage validates a raw message object at the strict tier.
func (d *Decoder) DecodeFullMessage(raw map[string]any) (*FullMessage, error) {
	msg, err := d.DecodeMessage(raw)
	if err != nil {
		return nil, err
	}
	return msg.Full()
}
