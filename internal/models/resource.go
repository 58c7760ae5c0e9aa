package models

// Resource is the entity descriptor contract the generic CRUD engine is
// instantiated with. Sanitized returns a copy with every free-text field
// normalized; ResourceID reports the auto-assigned primary key.
type Resource[T any] interface {
	Sanitized() T
	ResourceID() int
}
