// Package repository provides an insertion-ordered name-to-object store with
// rename notification, and a predicate-filtered read view over it.
package repository

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrUnknownName = errors.New("no object with this name")
	ErrNameTaken   = errors.New("an object with this name already exists")
)

// RenameFunc is called after an object stored in a Repository is renamed.
type RenameFunc[T any] func(object T, oldName, newName string)

// Repository stores objects under unique names, preserving insertion order.
// Adding under an existing name replaces the object in place. The zero value
// is not usable; create with New.
//
// Repository is not safe for concurrent use.
type Repository[T comparable] struct {
	byName   map[string]T
	names    []string
	onRename RenameFunc[T]
}

// New creates an empty repository.
func New[T comparable]() *Repository[T] {
	return &Repository[T]{byName: make(map[string]T)}
}

// Add stores object under name. If the name is already in use the stored
// object is replaced and keeps its position in the order.
func (r *Repository[T]) Add(name string, object T) {
	if _, exists := r.byName[name]; !exists {
		r.names = append(r.names, name)
	}
	r.byName[name] = object
}

// Remove deletes the object stored under name. It reports whether an object
// was removed.
func (r *Repository[T]) Remove(name string) bool {
	if _, exists := r.byName[name]; !exists {
		return false
	}
	delete(r.byName, name)
	for i, n := range r.names {
		if n == name {
			r.names = append(r.names[:i], r.names[i+1:]...)
			break
		}
	}
	return true
}

// Get returns the object stored under name.
func (r *Repository[T]) Get(name string) (T, bool) {
	obj, ok := r.byName[name]
	return obj, ok
}

// NameOf returns the name the object is stored under, searching in insertion
// order.
func (r *Repository[T]) NameOf(object T) (string, bool) {
	for _, name := range r.names {
		if r.byName[name] == object {
			return name, true
		}
	}
	return "", false
}

// ContainsName reports whether an object is stored under name.
func (r *Repository[T]) ContainsName(name string) bool {
	_, ok := r.byName[name]
	return ok
}

// ContainsObject reports whether the object is stored in the repository.
func (r *Repository[T]) ContainsObject(object T) bool {
	_, ok := r.NameOf(object)
	return ok
}

// Rename changes the name of the object stored under oldName to newName,
// keeping its position in the order, and notifies the rename callback if one
// is set. Renaming to the same name is a no-op.
func (r *Repository[T]) Rename(oldName, newName string) error {
	obj, ok := r.byName[oldName]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownName, oldName)
	}
	if newName == oldName {
		return nil
	}
	if _, taken := r.byName[newName]; taken {
		return fmt.Errorf("%w: %q", ErrNameTaken, newName)
	}

	delete(r.byName, oldName)
	r.byName[newName] = obj
	for i, n := range r.names {
		if n == oldName {
			r.names[i] = newName
			break
		}
	}

	if r.onRename != nil {
		r.onRename(obj, oldName, newName)
	}
	return nil
}

// OnRename sets the callback invoked after every successful rename. Passing
// nil removes a previously set callback. Only one callback is held at a time.
func (r *Repository[T]) OnRename(fn RenameFunc[T]) {
	r.onRename = fn
}

// Size returns the number of stored objects.
func (r *Repository[T]) Size() int {
	return len(r.byName)
}

// Empty reports whether the repository holds no objects.
func (r *Repository[T]) Empty() bool {
	return len(r.byName) == 0
}

// Names returns the stored names in insertion order. The returned slice is a
// copy.
func (r *Repository[T]) Names() []string {
	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}

// Objects returns the stored objects in insertion order.
func (r *Repository[T]) Objects() []T {
	objects := make([]T, 0, len(r.names))
	for _, name := range r.names {
		objects = append(objects, r.byName[name])
	}
	return objects
}
