package retained

import "fmt"

// PipelineID uniquely identifies one sub-document's content pipeline.
// The Source half is minted per client so that identifiers from unrelated
// clients never collide.
type PipelineID struct {
	Source uint32
	ID     uint32
}

// String returns a compact "source/id" form for logs and diagnostics.
func (p PipelineID) String() string {
	return fmt.Sprintf("%d/%d", p.Source, p.ID)
}

// Epoch is a monotonically advancing per-pipeline version counter for
// display-list generations. Callers advance it; the scene only records it.
type Epoch uint32

// Next returns the epoch that follows e.
func (e Epoch) Next() Epoch {
	return e + 1
}

// IDNamespace scopes identities minted by one client, keeping identifiers
// from unrelated clients distinct for the lifetime of the process.
type IDNamespace uint32

// PropertyBindingID is the opaque, process-unique identity of one
// dynamically-updatable property. It is minted when the binding is declared
// and is never reused across unrelated bindings.
type PropertyBindingID struct {
	Namespace IDNamespace
	UID       uint32
}

// String returns a compact "namespace:uid" form for logs and diagnostics.
func (id PropertyBindingID) String() string {
	return fmt.Sprintf("%d:%d", id.Namespace, id.UID)
}
