package repository

import (
	"strconv"
	"strings"
	"time"
)

// Ref identifies a row in a keyset-paginated listing: the row id and the
// timestamp the listing is ordered by (created_at or viewed_at).
type Ref struct {
	ID int64
	At time.Time
}

// Token encodes r as a page cursor.
func (r Ref) Token() string {
	return EncodeCursor(r.At.UTC().Format(time.RFC3339Nano), strconv.FormatInt(r.ID, 10))
}

// ParseToken decodes a page cursor. An empty or malformed token yields nil,
// which callers treat as "start from the first page".
func ParseToken(token string) *Ref {
	if token == "" {
		return nil
	}
	fields := DecodeCursor(token, 2)
	if fields == nil {
		return nil
	}
	at, err := time.Parse(time.RFC3339Nano, fields[0])
	if err != nil {
		return nil
	}
	id, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return nil
	}
	return &Ref{ID: id, At: at}
}

// EncodeCursor joins fields with an underscore.
func EncodeCursor(fields ...string) string {
	return strings.Join(fields, "_")
}

// DecodeCursor splits token into n fields. It returns nil when the token has
// fewer than n parts. Surplus parts are assumed to come from underscores in
// the first field and are merged back into it.
func DecodeCursor(token string, n int) []string {
	parts := strings.Split(token, "_")
	if len(parts) < n {
		return nil
	}
	if len(parts) == n {
		return parts
	}
	head := len(parts) - n + 1
	out := make([]string, 0, n)
	out = append(out, strings.Join(parts[:head], "_"))
	return append(out, parts[head:]...)
}
