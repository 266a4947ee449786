package internal

import "fmt"

// StorageError represents errors accessing the local key-value store
type StorageError struct {
	Key string
	Op  string // "open", "get", "set", "delete"
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error: %s %s: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// HydrateError represents errors restoring persisted session state.
// The engine recovers from it by falling back to the default session set.
type HydrateError struct {
	Key string
	Err error
}

func (e *HydrateError) Error() string {
	return fmt.Sprintf("hydrate error [%s]: %v", e.Key, e.Err)
}

func (e *HydrateError) Unwrap() error {
	return e.Err
}

// CatalogError represents errors operating on the product catalog
type CatalogError struct {
	ProductID string
	Op        string // "update", "delete", "get"
	Err       error
}

func (e *CatalogError) Error() string {
	return fmt.Sprintf("catalog error [%s] %s: %v", e.Op, e.ProductID, e.Err)
}

func (e *CatalogError) Unwrap() error {
	return e.Err
}
