package wordify

import "github.com/riverfjs/wordify-go/internal/markup"

// ErrMalformedInput is the source of every malformed-tree error.
var ErrMalformedInput = markup.ErrMalformedInput

// IsMalformedInput reports whether err means the input tree violated the
// node contract. Callers typically map it to a client error response.
func IsMalformedInput(err error) bool {
	return markup.IsMalformed(err)
}
