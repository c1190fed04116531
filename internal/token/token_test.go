package token

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		tok  Resolvable
	}{
		{"user quiz", Resolvable{Kind: KindUser, Subject: SubjectQuiz, PrincipalID: "clx8a9f2k0001", Seed: 1717171717171, ScopeID: "4f1c2a77e3b64d2f9c0b5a6d7e8f9a0b", Count: 10}},
		{"user flashcard", Resolvable{Kind: KindUser, Subject: SubjectFlashcard, PrincipalID: "p42", Seed: 0, ScopeID: "s1", Count: 1}},
		{"exam simulation", Resolvable{Kind: KindExam, Subject: SubjectQuiz, PrincipalID: "clx8a9f2k0001", Seed: 1717171717999, ScopeID: "class9", Count: 30}},
		{"guest resolvable", Resolvable{Kind: KindUser, Subject: SubjectQuiz, PrincipalID: "", Seed: 99, ScopeID: "sec", Count: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := Encode(tt.tok)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			got, err := Decode(raw)
			if err != nil {
				t.Fatalf("Decode(%q): %v", raw, err)
			}
			want := tt.tok
			if want.PrincipalID == "" {
				want.PrincipalID = GuestPrincipal
			}
			if got != want {
				t.Errorf("round trip mismatch: got %+v, want %+v", got, want)
			}
		})
	}
}

func TestEncodeRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		tok  Resolvable
	}{
		{"unknown kind", Resolvable{Kind: "admin", Subject: SubjectQuiz, PrincipalID: "p", ScopeID: "s", Count: 1}},
		{"unknown subject", Resolvable{Kind: KindUser, Subject: "survey", PrincipalID: "p", ScopeID: "s", Count: 1}},
		{"principal with delimiter", Resolvable{Kind: KindUser, Subject: SubjectQuiz, PrincipalID: "a-b", ScopeID: "s", Count: 1}},
		{"negative seed", Resolvable{Kind: KindExam, Subject: SubjectQuiz, PrincipalID: "p", Seed: -5, ScopeID: "s", Count: 1}},
		{"missing scope", Resolvable{Kind: KindUser, Subject: SubjectQuiz, PrincipalID: "p", Count: 1}},
		{"non-positive count", Resolvable{Kind: KindUser, Subject: SubjectQuiz, PrincipalID: "p", ScopeID: "s", Count: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Encode(tt.tok); err == nil {
				t.Error("Encode accepted invalid input")
			}
		})
	}
}

func TestDecodeFailsClosed(t *testing.T) {
	payload := base64.RawURLEncoding.EncodeToString([]byte("scope:5"))

	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"too few segments", "user-quiz-p1"},
		{"unknown kind", "root-quiz-p1-123-" + payload},
		{"unknown subject", "user-poll-p1-123-" + payload},
		{"empty principal", "user-quiz--123-" + payload},
		{"non-numeric seed", "user-quiz-p1-abc-" + payload},
		{"bad base64", "user-quiz-p1-123-!!!"},
		{"payload without colon", "user-quiz-p1-123-" + base64.RawURLEncoding.EncodeToString([]byte("scope5"))},
		{"payload with two colons", "user-quiz-p1-123-" + base64.RawURLEncoding.EncodeToString([]byte("a:b:c"))},
		{"payload empty scope", "user-quiz-p1-123-" + base64.RawURLEncoding.EncodeToString([]byte(":5"))},
		{"payload non-numeric count", "user-quiz-p1-123-" + base64.RawURLEncoding.EncodeToString([]byte("scope:x"))},
		{"payload zero count", "user-quiz-p1-123-" + base64.RawURLEncoding.EncodeToString([]byte("scope:0"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode(tt.raw); !errors.Is(err, ErrInvalidToken) {
				t.Errorf("Decode(%q) err = %v, want ErrInvalidToken", tt.raw, err)
			}
		})
	}
}

func TestDecodeToleratesDelimiterInPayload(t *testing.T) {
	// base64url output can legitimately contain '-'; the decoder must rejoin
	// trailing segments instead of rejecting the token. 0xfb 0xff 0xbf fills
	// one base64 block and encodes to "-_-_", so the payload is guaranteed to
	// carry the delimiter.
	scope := string([]byte{0xfb, 0xff, 0xbf})
	tok := Resolvable{Kind: KindExam, Subject: SubjectQuiz, PrincipalID: "p1", Seed: 7, ScopeID: scope, Count: 25}
	raw, err := Encode(tok)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if strings.Count(raw, delimiter) <= 4 {
		t.Fatalf("payload of %q does not contain the delimiter, rejoin path not exercised", raw)
	}

	got, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode(%q): %v", raw, err)
	}
	if got.ScopeID != scope || got.Count != 25 || got.Seed != 7 {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, tok)
	}
}

func TestGuestID(t *testing.T) {
	at := time.UnixMilli(1717171717171)
	if got := GuestID(SubjectFlashcard, at); got != "guest-flashcard-1717171717171" {
		t.Errorf("GuestID = %q", got)
	}
}
