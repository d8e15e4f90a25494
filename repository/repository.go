// Package repository provides the public API for the insertion-ordered
// name-to-object store and its filtered view.
package repository

import (
	"github.com/ffnet-ml/ffnet/internal/repository"
)

// Repository stores objects under unique names, preserving insertion order.
type Repository[T comparable] = repository.Repository[T]

// Filtered is a predicate-filtered read view over a Repository.
type Filtered[T comparable] = repository.Filtered[T]

// RenameFunc is called after an object is renamed.
type RenameFunc[T any] = repository.RenameFunc[T]

// Rename errors.
var (
	ErrUnknownName = repository.ErrUnknownName
	ErrNameTaken   = repository.ErrNameTaken
)

// New creates an empty repository.
func New[T comparable]() *Repository[T] {
	return repository.New[T]()
}

// NewFiltered creates a filtered view over repo. A nil predicate keeps every
// object.
func NewFiltered[T comparable](repo *Repository[T], keep func(T) bool) *Filtered[T] {
	return repository.NewFiltered(repo, keep)
}
