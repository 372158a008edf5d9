package chat

import "testing"

func TestResolvedUserID(t *testing.T) {
	cases := map[string]string{
		"":       DefaultUserID,
		"   ":    DefaultUserID,
		"alice":  "alice",
		" bob  ": "bob",
	}
	for in, want := range cases {
		if got := (ChatRequest{UserID: in}).ResolvedUserID(); got != want {
			t.Fatalf("ResolvedUserID(%q) = %q, want %q", in, got, want)
		}
	}
}
