// Package arraylist provides List, a generic resizable array.
//
// A List owns a contiguous buffer and tracks its logical size separately
// from the buffer capacity. Insertion and removal shift the tail of the
// buffer by one slot; the buffer grows by half its capacity (or to the
// required size, whichever is larger) when an insertion would overflow it,
// and only shrinks on an explicit TrimToSize.
//
// Searches use the equality supplied at construction: == for comparable
// element types, or any function passed to NewFunc. Sort takes a three-way
// comparator and sorts in place with quicksort.
//
//	l := arraylist.New[int]()
//	l.AddAll(5, 3, 8, 1)
//	l.Sort(arraylist.Ascending[int])
//	v, err := l.Get(0) // 1, nil
//
// A List is not safe for concurrent use; callers sharing one across
// goroutines must serialize access themselves.
package arraylist
