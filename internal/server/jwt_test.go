package server

import (
	"errors"
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Minute)
	token, err := issuer.Issue(7, "room-a")
	if err != nil {
		t.Fatal(err)
	}

	id, room, err := issuer.Verify(token)
	if err != nil {
		t.Fatal(err)
	}
	if id != 7 || room != "room-a" {
		t.Errorf("got (%d, %q)", id, room)
	}
}

func TestTokenRejected(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Minute)
	token, err := issuer.Issue(3, DefaultRoomID)
	if err != nil {
		t.Fatal(err)
	}

	expired := NewTokenIssuer("secret", time.Minute)
	expired.now = func() time.Time { return time.Now().Add(2 * time.Minute) }

	tests := []struct {
		name   string
		issuer *TokenIssuer
		token  string
	}{
		{"wrong secret", NewTokenIssuer("other", time.Minute), token},
		{"expired", expired, token},
		{"garbage", issuer, "not.a.token"},
		{"empty", issuer, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := tt.issuer.Verify(tt.token); !errors.Is(err, ErrInvalidToken) {
				t.Errorf("err = %v, want ErrInvalidToken", err)
			}
		})
	}
}
