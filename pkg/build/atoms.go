package build

import (
	"reflect"
	"sync"

	"github.com/vellum-dev/vellum/pkg/dom"
)

// doctypeMarker is the sentinel type behind Doctype.
type doctypeMarker struct{}

// Doctype is the sentinel atom for the document-type preamble. Placed
// in a description it builds the node that renders <!doctype html>.
var Doctype = doctypeMarker{}

var (
	atomsMu sync.RWMutex
	atoms   = map[any]func() *dom.Node{}
)

func init() {
	RegisterAtom(Doctype, dom.Doctype)
}

// RegisterAtom maps a sentinel value to a fixed node constructor. The
// builder consults the registry for atoms it does not otherwise
// recognize, so callers can teach descriptions new fixed-form values.
// The value must be comparable. Registration is expected at startup;
// the registry is read-mostly thereafter.
func RegisterAtom(value any, fn func() *dom.Node) {
	atomsMu.Lock()
	defer atomsMu.Unlock()
	atoms[value] = fn
}

// lookupAtom returns the registered node for value, or nil.
func lookupAtom(value any) *dom.Node {
	if value == nil || !reflect.TypeOf(value).Comparable() {
		return nil
	}

	atomsMu.RLock()
	fn := atoms[value]
	atomsMu.RUnlock()

	if fn == nil {
		return nil
	}
	return fn()
}
