package markup

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	goerrors "github.com/goliatone/go-errors"
)

// MalformedInputCode is the text code attached to contract violations.
const MalformedInputCode = "MALFORMED_INPUT"

// ErrMalformedInput is the source of every error returned for a tree that
// violates the node contract.
var ErrMalformedInput = errors.New("malformed markup input")

func malformed(path []int, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if len(path) > 0 {
		msg = fmt.Sprintf("%s (at %s)", msg, formatPath(path))
	}
	return goerrors.Wrap(ErrMalformedInput, goerrors.CategoryValidation, msg).
		WithTextCode(MalformedInputCode)
}

// IsMalformed reports whether err was produced for a malformed tree.
func IsMalformed(err error) bool {
	if err == nil {
		return false
	}
	return goerrors.IsCategory(err, goerrors.CategoryValidation)
}

func formatPath(path []int) string {
	parts := make([]string, len(path))
	for i, idx := range path {
		parts[i] = strconv.Itoa(idx)
	}
	return "node " + strings.Join(parts, ".")
}
