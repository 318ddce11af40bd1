package arraylist

import "golang.org/x/exp/constraints"

// Sort orders the live elements in place so that cmp(a, b) <= 0 for every
// adjacent pair. cmp returns a negative number, zero or a positive number
// when a sorts before, with or after b.
//
// Sort is a quicksort pivoting on the last element of each range; it is not
// stable and already ordered input costs O(n^2) comparisons.
func (l *List[E]) Sort(cmp func(a, b E) int) {
	quickSort(l.elements[:l.size], 0, l.size-1, cmp)
}

// quickSort recurses into the smaller partition and loops over the larger
// one, so the stack stays O(log n) deep.
func quickSort[E any](data []E, low, high int, cmp func(a, b E) int) {
	for low < high {
		p := partition(data, low, high, cmp)
		if p-low < high-p {
			quickSort(data, low, p-1, cmp)
			low = p + 1
		} else {
			quickSort(data, p+1, high, cmp)
			high = p - 1
		}
	}
}

// partition moves every element not greater than data[high] to the front
// and returns the pivot's final index.
func partition[E any](data []E, low, high int, cmp func(a, b E) int) int {
	pivot := data[high]
	i := low - 1
	for j := low; j < high; j++ {
		if cmp(data[j], pivot) <= 0 {
			i++
			data[i], data[j] = data[j], data[i]
		}
	}
	data[i+1], data[high] = data[high], data[i+1]
	return i + 1
}

// Ascending orders values from smallest to largest.
func Ascending[E constraints.Ordered](a, b E) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func Descending[E constraints.Ordered](a, b E) int {
	return Ascending(b, a)
}
