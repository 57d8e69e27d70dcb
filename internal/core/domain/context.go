package domain

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Direction is the text direction of a request context.
type Direction string

const (
	// DirLTR is left-to-right text direction.
	DirLTR Direction = "ltr"
	// DirRTL is right-to-left text direction.
	DirRTL Direction = "rtl"
)

// Context is the per-request selector driving which files of a module apply.
// It is immutable; one instance exists per incoming request or build.
type Context struct {
	Language  string
	Skin      string
	Debug     bool
	Direction Direction
}

// Hash returns a stable opaque key for this context, used to key the
// per-module expansion caches and the persisted dependency lists.
func (c Context) Hash() string {
	h := xxhash.New()
	_, _ = h.WriteString(c.Language)
	_, _ = h.Write([]byte{0})
	_, _ = h.WriteString(c.Skin)
	_, _ = h.Write([]byte{0})
	_, _ = h.WriteString(strconv.FormatBool(c.Debug))
	_, _ = h.Write([]byte{0})
	_, _ = h.WriteString(string(c.Direction))
	return strconv.FormatUint(h.Sum64(), 16)
}
