package fixbits

import "fmt"

// ErrIndexOutOfRange indicates a bit index outside the addressable range of
// a bit set. It is the only error kind produced by this package; every other
// operation is total.
//
// Callers should treat it as a precondition violation rather than a
// transient condition: it is never retried or recovered internally.
type ErrIndexOutOfRange struct {
	// Index is the offending bit index.
	Index int
	// Bits is the addressable width of the set the index was used against.
	Bits int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("bit index %d out of range [0, %d)", e.Index, e.Bits)
}
