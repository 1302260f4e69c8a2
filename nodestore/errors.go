package nodestore

import "fmt"

// NotFoundError is returned by Resolve for an id the store never produced.
// Well-formed callers (DTS construction, matchers, the generator) never
// trigger it; it exists to catch programming errors early rather than
// let a zero-value NodeRef propagate silently.
type NotFoundError struct {
	ID NodeId
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("nodestore: no node resolves to %s", e.ID)
}
