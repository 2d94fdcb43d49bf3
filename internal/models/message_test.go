package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestNewMessageStartsWithoutReply(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*3600)
	m := NewMessage("a@b.c", "alice", "hi", "10.0.0.1", "Other | Other | Other", time.Date(2024, 1, 1, 8, 0, 0, 0, loc))

	if m.ID == "" {
		t.Error("expected an id to be assigned")
	}
	if m.Reply != nil {
		t.Errorf("expected nil reply, got %q", *m.Reply)
	}
	if m.CreatedAt.Location() != time.UTC || m.CreatedAt.Hour() != 0 {
		t.Errorf("expected createdAt normalized to UTC, got %v", m.CreatedAt)
	}
}

func TestNewMessageIDsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		m := NewMessage("a@b.c", "alice", "hi", "", "", time.Now())
		if seen[m.ID] {
			t.Fatalf("duplicate id %s", m.ID)
		}
		seen[m.ID] = true
	}
}

func TestMessageJSONOmitsPrivateFields(t *testing.T) {
	m := NewMessage("a@b.c", "alice", "hi", "10.0.0.1", "iPhone | iOS | Mobile Safari", time.Now())

	for _, v := range []any{m, m.Public()} {
		data, err := json.Marshal(v)
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}

		var fields map[string]any
		if err := json.Unmarshal(data, &fields); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}

		for _, key := range []string{"ip", "device", "IP", "Device"} {
			if _, ok := fields[key]; ok {
				t.Errorf("public json must not contain %q: %s", key, data)
			}
		}
		if reply, ok := fields["reply"]; !ok || reply != nil {
			t.Errorf("expected reply to be present and null: %s", data)
		}
	}
}

func TestNewMessageTruncatesToMicroseconds(t *testing.T) {
	created := time.Date(2024, 1, 1, 0, 0, 0, 123456789, time.UTC)
	m := NewMessage("a@b.c", "alice", "hi", "", "", created)

	if got := m.CreatedAt.Nanosecond(); got != 123456000 {
		t.Errorf("expected createdAt truncated to microseconds, got %d ns", got)
	}
}
