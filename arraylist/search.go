package arraylist

import "reflect"

// NotFound is the index reported by IndexOf and LastIndexOf when no element
// matches.
const NotFound = -1

// IndexOf returns the smallest index holding an element equal to target.
//
// A nil target (nil pointer, map, slice, chan, func or interface) matches
// nil slots only and the equality function is not called for it.
func (l *List[E]) IndexOf(target E) int {
	if isNil(target) {
		for i := 0; i < l.size; i++ {
			if isNil(l.elements[i]) {
				return i
			}
		}
		return NotFound
	}
	for i := 0; i < l.size; i++ {
		if l.equal(target, l.elements[i]) {
			return i
		}
	}
	return NotFound
}

// LastIndexOf is IndexOf scanning from the end.
func (l *List[E]) LastIndexOf(target E) int {
	if isNil(target) {
		for i := l.size - 1; i >= 0; i-- {
			if isNil(l.elements[i]) {
				return i
			}
		}
		return NotFound
	}
	for i := l.size - 1; i >= 0; i-- {
		if l.equal(target, l.elements[i]) {
			return i
		}
	}
	return NotFound
}

func (l *List[E]) Contains(target E) bool {
	return l.IndexOf(target) != NotFound
}

func (l *List[E]) equal(a, b E) bool {
	if l.eq == nil {
		return any(a) == any(b)
	}
	return l.eq(a, b)
}

func isNil(v any) bool {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return true
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
