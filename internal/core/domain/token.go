package domain

import "errors"

// Token verification failures. All of them collapse into a single 401 at the
// HTTP edge; the distinction exists for internal diagnostics only.
var (
	ErrTokenMalformed = errors.New("token malformed")
	ErrTokenSignature = errors.New("token signature invalid")
	ErrTokenExpired   = errors.New("token expired")
)
