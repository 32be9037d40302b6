package protocol

import (
	"errors"
	"testing"

	"github.com/goccy/go-json"
)

func TestDecodeMemberAllFieldsAbsent(t *testing.T) {
	m, err := DecodeMember(map[string]any{})
	if err != nil {
		t.Fatalf("decode empty member: %v", err)
	}
	if m.User != nil || m.Name != nil || m.Avatar != nil || m.JoinedAt != nil {
		t.Fatalf("expected empty member, got %+v", m)
	}
}

func TestDecodeMemberJoinedAtMilliseconds(t *testing.T) {
	m, err := DecodeMember(map[string]any{
		"user":      map[string]any{"id": "u1"},
		"joined_at": json.Number("1703239200123"),
	})
	if err != nil {
		t.Fatalf("decode member: %v", err)
	}
	if m.JoinedAt == nil || m.JoinedAt.UnixMilli() != 1703239200123 {
		t.Fatalf("unexpected joined_at: %v", m.JoinedAt)
	}
}

func TestDecodeMemberInvalidJoinedAt(t *testing.T) {
	_, err := DecodeMember(map[string]any{"joined_at": "yesterday"})
	var invalid *InvalidTimestampError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidTimestampError, got %v", err)
	}
}

func TestMemberFullWiden(t *testing.T) {
	m, err := DecodeMember(map[string]any{
		"user":      map[string]any{"id": "u1", "name": "dan"},
		"name":      "dan",
		"joined_at": json.Number("1703239200000"),
		"nick":      "д",
	})
	if err != nil {
		t.Fatalf("decode member: %v", err)
	}

	full, err := m.Full()
	if err != nil {
		t.Fatalf("widen: %v", err)
	}
	if full.User.ID != "u1" || full.JoinedAt.UnixMilli() != 1703239200000 {
		t.Fatalf("unexpected full member: %+v", full)
	}
	if full.Extra["nick"] != "д" {
		t.Fatalf("extras dropped on widen: %+v", full.Extra)
	}
}

func TestMemberFullWidenRejectsPartial(t *testing.T) {
	var missing *MissingFieldError

	m := &Member{}
	if _, err := m.Full(); !errors.As(err, &missing) || missing.Field != "user" {
		t.Fatalf("expected missing user, got %v", err)
	}

	m, err := DecodeMember(map[string]any{"user": map[string]any{"id": "u1"}})
	if err != nil {
		t.Fatalf("decode member: %v", err)
	}
	if _, err := m.Full(); !errors.As(err, &missing) || missing.Field != "joined_at" {
		t.Fatalf("expected missing joined_at, got %v", err)
	}
}

func TestDecodeFullMember(t *testing.T) {
	full, err := DecodeFullMember(map[string]any{
		"user":      map[string]any{"id": "u1"},
		"joined_at": json.Number("1000"),
	})
	if err != nil {
		t.Fatalf("decode full member: %v", err)
	}
	if full.User.ID != "u1" {
		t.Fatalf("unexpected user: %+v", full.User)
	}

	if _, err := DecodeFullMember(map[string]any{"name": "dan"}); err == nil {
		t.Fatalf("expected error for partial member")
	}
}
