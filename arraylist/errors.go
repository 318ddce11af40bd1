package arraylist

import "github.com/pkg/errors"

var (
	// ErrInvalidArgument is returned by constructors given a negative
	// capacity or a nil equality function.
	ErrInvalidArgument = errors.New("arraylist: invalid argument")

	// ErrIndexOutOfRange is returned by indexed operations when the index
	// falls outside the operation's valid range.
	ErrIndexOutOfRange = errors.New("arraylist: index out of range")
)

func (l *List[E]) rangeCheck(index int) error {
	if index >= l.size || index < 0 {
		return errors.Wrapf(ErrIndexOutOfRange, "index: %d, size: %d", index, l.size)
	}
	return nil
}

// insertion allows index == size
func (l *List[E]) rangeCheckForAdd(index int) error {
	if index > l.size || index < 0 {
		return errors.Wrapf(ErrIndexOutOfRange, "index: %d, size: %d", index, l.size)
	}
	return nil
}
