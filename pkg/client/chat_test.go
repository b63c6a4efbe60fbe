package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestChat(t *testing.T) {
	replies := map[string]string{
		"how much did I spend": "You spent $1500 this month.",
		"biggest category":     "Rent is your biggest category.",
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat" || r.Method != http.MethodPost {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}

		var req map[string]string
		json.NewDecoder(r.Body).Decode(&req)

		json.NewEncoder(w).Encode(map[string]string{"response": replies[req["query"]]})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	s := &Session{Token: "tok123", Email: "a@b.com"}

	if _, err := c.Chat(context.Background(), s, "how much did I spend"); err != nil {
		t.Fatalf("unexpected chat error: %v", err)
	}
	reply, err := c.Chat(context.Background(), s, "biggest category")
	if err != nil {
		t.Fatalf("unexpected chat error: %v", err)
	}
	if reply != "Rent is your biggest category." {
		t.Fatalf("unexpected reply %q", reply)
	}

	// Transcript keeps user/assistant turns in order.
	want := []ChatMessage{
		{Role: RoleUser, Content: "how much did I spend"},
		{Role: RoleAssistant, Content: "You spent $1500 this month."},
		{Role: RoleUser, Content: "biggest category"},
		{Role: RoleAssistant, Content: "Rent is your biggest category."},
	}
	if len(s.Chat) != len(want) {
		t.Fatalf("expected %d transcript entries, got %d", len(want), len(s.Chat))
	}
	for i, msg := range want {
		if s.Chat[i] != msg {
			t.Fatalf("transcript[%d] = %+v, want %+v", i, s.Chat[i], msg)
		}
	}

	s.Logout()
	if s.Authenticated() || s.Email != "" || s.Chat != nil {
		t.Fatalf("expected logout to clear session, got %+v", s)
	}
}
