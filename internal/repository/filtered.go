package repository

// Filtered is a read view of a Repository showing only the objects a
// predicate accepts. Writes pass through to the underlying repository
// unfiltered; reads apply the predicate. Filtered wraps by composition, so
// the view always reflects the current repository contents.
type Filtered[T comparable] struct {
	repo *Repository[T]
	keep func(T) bool
}

// NewFiltered creates a filtered view over repo. A nil predicate keeps every
// object.
func NewFiltered[T comparable](repo *Repository[T], keep func(T) bool) *Filtered[T] {
	if keep == nil {
		keep = func(T) bool { return true }
	}
	return &Filtered[T]{repo: repo, keep: keep}
}

// Add stores object in the underlying repository, without filtering.
func (f *Filtered[T]) Add(name string, object T) {
	f.repo.Add(name, object)
}

// Remove deletes from the underlying repository, without filtering.
func (f *Filtered[T]) Remove(name string) bool {
	return f.repo.Remove(name)
}

// Rename renames in the underlying repository.
func (f *Filtered[T]) Rename(oldName, newName string) error {
	return f.repo.Rename(oldName, newName)
}

// OnRename sets the rename callback on the underlying repository.
func (f *Filtered[T]) OnRename(fn RenameFunc[T]) {
	f.repo.OnRename(fn)
}

// Get returns the object stored under name if the predicate accepts it.
func (f *Filtered[T]) Get(name string) (T, bool) {
	obj, ok := f.repo.Get(name)
	if !ok || !f.keep(obj) {
		var zero T
		return zero, false
	}
	return obj, true
}

// NameOf returns the name of object if the predicate accepts it.
func (f *Filtered[T]) NameOf(object T) (string, bool) {
	if !f.keep(object) {
		return "", false
	}
	return f.repo.NameOf(object)
}

// ContainsName reports whether name maps to an object the predicate accepts.
func (f *Filtered[T]) ContainsName(name string) bool {
	_, ok := f.Get(name)
	return ok
}

// ContainsObject reports whether the repository holds object and the
// predicate accepts it.
func (f *Filtered[T]) ContainsObject(object T) bool {
	return f.keep(object) && f.repo.ContainsObject(object)
}

// Names returns the names of the accepted objects, in insertion order.
func (f *Filtered[T]) Names() []string {
	names := make([]string, 0)
	for _, name := range f.repo.Names() {
		if obj, ok := f.repo.Get(name); ok && f.keep(obj) {
			names = append(names, name)
		}
	}
	return names
}

// Objects returns the accepted objects, in insertion order.
func (f *Filtered[T]) Objects() []T {
	objects := make([]T, 0)
	for _, obj := range f.repo.Objects() {
		if f.keep(obj) {
			objects = append(objects, obj)
		}
	}
	return objects
}

// Size returns the number of accepted objects. O(n).
func (f *Filtered[T]) Size() int {
	return len(f.Names())
}

// Empty reports whether the view shows no objects.
func (f *Filtered[T]) Empty() bool {
	return f.Size() == 0
}
