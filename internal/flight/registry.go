// Package flight tracks which entity is currently undergoing a given kind
// of asynchronous operation, so that one row's in-flight request never
// blocks its siblings.
package flight

import "sync"

// Kind is one class of asynchronous operation. The registry holds at most
// one in-flight entity id per kind.
type Kind string

const (
	KindDownload         Kind = "download"
	KindPreview          Kind = "preview"
	KindSubmitForSigning Kind = "submit_for_signing"
	KindReview           Kind = "review"
	KindCreateOrder      Kind = "create_order"
	KindCompleteHiring   Kind = "complete_hiring"
	KindUpload           Kind = "upload"
	KindCreateContract   Kind = "create_contract"
	KindSubmit           Kind = "submit"
)

// Registry holds one nullable entity-id slot per operation kind. A registry
// instance is scoped to a single list view, not shared globally. Reads go
// through IsBusy/AnyBusy only; the slot representation stays private.
type Registry struct {
	mu    sync.Mutex
	slots map[Kind]string
}

func NewRegistry() *Registry {
	return &Registry{slots: make(map[Kind]string)}
}

// Begin occupies the slot for kind with the given entity id, overwriting
// any previous occupant. The triggering control disables once its slot is
// occupied, so a same-kind overwrite only happens across view instances.
func (r *Registry) Begin(kind Kind, id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.slots[kind] = id
}

// End clears the slot for kind unconditionally. Callers invoke it in a
// defer so a failed remote call never leaves a slot occupied. Clearing a
// slot that was reassigned by a superseding Begin is an accepted no-op
// from the superseder's point of view: slots hold identifiers, not
// results.
func (r *Registry) End(kind Kind) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.slots, kind)
}

// IsBusy reports whether the given entity is the one currently undergoing
// the operation kind.
func (r *Registry) IsBusy(kind Kind, id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	occupant, ok := r.slots[kind]
	return ok && occupant == id
}

// AnyBusy reports whether any operation of any kind is outstanding. It
// gates page-level bulk controls while a row mutation is in flight.
func (r *Registry) AnyBusy() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.slots) > 0
}

// Len reports the number of occupied slots.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.slots)
}

// Reset drops every slot. Used when the owning view unmounts.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.slots = make(map[Kind]string)
}
