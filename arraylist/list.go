package arraylist

import (
	"iter"

	"github.com/pkg/errors"
)

// DefaultCapacity is the buffer capacity of a List built by New or NewFunc.
const DefaultCapacity = 10

// List is a resizable array of E.
//
// Elements at indices [0, Len()) are live and contiguous in the backing
// buffer. The zero List is empty with capacity 0 and compares elements
// with ==, which panics if E holds incomparable values.
type List[E any] struct {
	elements []E
	size     int
	eq       func(a, b E) bool
}

// New returns an empty List with DefaultCapacity that compares elements
// with ==. For an interface E, searches panic when a compared value holds an
// incomparable dynamic type such as a slice; use NewFunc for those.
func New[E comparable]() *List[E] {
	return &List[E]{elements: make([]E, DefaultCapacity), eq: equal[E]}
}

// NewWithCapacity returns an empty List with the given capacity. A negative
// capacity yields ErrInvalidArgument.
func NewWithCapacity[E comparable](capacity int) (*List[E], error) {
	return NewFuncWithCapacity(capacity, equal[E])
}

// NewFunc returns an empty List with DefaultCapacity that compares elements
// with eq. It panics if eq is nil.
func NewFunc[E any](eq func(a, b E) bool) *List[E] {
	l, err := NewFuncWithCapacity(DefaultCapacity, eq)
	if err != nil {
		panic(err)
	}
	return l
}

// NewFuncWithCapacity is NewFunc with an explicit initial capacity.
func NewFuncWithCapacity[E any](capacity int, eq func(a, b E) bool) (*List[E], error) {
	if capacity < 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "illegal capacity: %d", capacity)
	}
	if eq == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "nil equality function")
	}
	return &List[E]{elements: make([]E, capacity), eq: eq}, nil
}

func equal[E comparable](a, b E) bool {
	return a == b
}

// Len returns the number of live elements.
func (l *List[E]) Len() int {
	return l.size
}

// Cap returns the capacity of the backing buffer.
func (l *List[E]) Cap() int {
	return len(l.elements)
}

func (l *List[E]) IsEmpty() bool {
	return l.size == 0
}

// Add appends e to the end of the list.
func (l *List[E]) Add(e E) {
	l.ensureCapacity(l.size + 1)
	l.elements[l.size] = e
	l.size++
}

// Insert stores e at index, shifting the elements at index and above one
// slot to the right. index may equal Len().
func (l *List[E]) Insert(index int, e E) error {
	if err := l.rangeCheckForAdd(index); err != nil {
		return err
	}
	l.ensureCapacity(l.size + 1)
	copy(l.elements[index+1:l.size+1], l.elements[index:l.size])
	l.elements[index] = e
	l.size++
	return nil
}

// AddAll appends elems in order, growing the buffer at most once. It
// reports whether anything was appended.
func (l *List[E]) AddAll(elems ...E) bool {
	n := len(elems)
	l.ensureCapacity(l.size + n)
	copy(l.elements[l.size:], elems)
	l.size += n
	return n != 0
}

// AddSeq drains seq and appends its values like AddAll.
func (l *List[E]) AddSeq(seq iter.Seq[E]) bool {
	var batch []E
	for e := range seq {
		batch = append(batch, e)
	}
	return l.AddAll(batch...)
}

// Clear drops every element. The capacity is unchanged.
func (l *List[E]) Clear() {
	clear(l.elements[:l.size])
	l.size = 0
}

// TrimToSize shrinks the buffer to exactly Len() slots.
func (l *List[E]) TrimToSize() {
	if l.size < len(l.elements) {
		trimmed := make([]E, l.size)
		copy(trimmed, l.elements)
		l.elements = trimmed
	}
}

func (l *List[E]) Get(index int) (E, error) {
	if err := l.rangeCheck(index); err != nil {
		var zero E
		return zero, err
	}
	return l.elements[index], nil
}

// Set replaces the element at index and returns the previous one.
func (l *List[E]) Set(index int, e E) (E, error) {
	if err := l.rangeCheck(index); err != nil {
		var zero E
		return zero, err
	}
	old := l.elements[index]
	l.elements[index] = e
	return old, nil
}

// RemoveAt removes and returns the element at index, shifting later
// elements one slot to the left.
func (l *List[E]) RemoveAt(index int) (E, error) {
	if err := l.rangeCheck(index); err != nil {
		var zero E
		return zero, err
	}
	old := l.elements[index]
	l.fastRemove(index)
	return old, nil
}

// Remove removes the first element equal to target and reports whether
// one was found.
func (l *List[E]) Remove(target E) bool {
	index := l.IndexOf(target)
	if index == NotFound {
		return false
	}
	l.fastRemove(index)
	return true
}

// Filter removes every element for which drop returns true, keeping the
// order of the rest, and returns how many were removed.
func (l *List[E]) Filter(drop func(e E) bool) int {
	kept := 0
	for i := 0; i < l.size; i++ {
		if drop(l.elements[i]) {
			continue
		}
		l.elements[kept] = l.elements[i]
		kept++
	}
	removed := l.size - kept
	clear(l.elements[kept:l.size])
	l.size = kept
	return removed
}

// ToSlice returns a copy of the live elements.
func (l *List[E]) ToSlice() []E {
	out := make([]E, l.size)
	copy(out, l.elements[:l.size])
	return out
}

func (l *List[E]) fastRemove(index int) {
	copy(l.elements[index:l.size-1], l.elements[index+1:l.size])
	l.size--
	var zero E
	l.elements[l.size] = zero
}

func (l *List[E]) ensureCapacity(minCapacity int) {
	if minCapacity > len(l.elements) {
		l.grow(minCapacity)
	}
}

// grow by half the current capacity, or to minCapacity if that is larger.
func (l *List[E]) grow(minCapacity int) {
	oldCapacity := len(l.elements)
	newCapacity := oldCapacity + oldCapacity>>1
	if newCapacity < minCapacity {
		newCapacity = minCapacity
	}
	grown := make([]E, newCapacity)
	copy(grown, l.elements[:l.size])
	l.elements = grown
}
