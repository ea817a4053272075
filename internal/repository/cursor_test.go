package repository

import (
	"reflect"
	"testing"
	"time"
)

func TestDecodeCursor(t *testing.T) {
	tests := []struct {
		token string
		n     int
		want  []string
	}{
		{"a_b", 2, []string{"a", "b"}},
		{"a", 2, nil},
		{"a_b_c", 2, []string{"a_b", "c"}},
		{"a_b_c_d", 3, []string{"a_b", "c", "d"}},
		{"", 1, []string{""}},
	}
	for _, tt := range tests {
		if got := DecodeCursor(tt.token, tt.n); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("DecodeCursor(%q, %d) = %q, want %q", tt.token, tt.n, got, tt.want)
		}
	}
}

func TestRefTokenRoundTrip(t *testing.T) {
	ref := Ref{ID: 42, At: time.Date(2025, 1, 15, 10, 0, 0, 123456000, time.UTC)}
	got := ParseToken(ref.Token())
	if got == nil {
		t.Fatal("ParseToken returned nil")
	}
	if got.ID != ref.ID || !got.At.Equal(ref.At) {
		t.Errorf("ParseToken(Token()) = %+v, want %+v", got, ref)
	}
}

func TestParseTokenInvalid(t *testing.T) {
	for _, token := range []string{"", "garbage", "2025-01-15T10:00:00Z_x", "yesterday_5"} {
		if got := ParseToken(token); got != nil {
			t.Errorf("ParseToken(%q) = %+v, want nil", token, got)
		}
	}
}
