/*
File    : vivjson/value/array.go
*/
package value

// ArrayValue is an ordered, 0-indexed sequence of values.
type ArrayValue struct {
	Elems []Value
}

// NewArray returns a fresh ArrayValue wrapping elems (not copied).
func NewArray(elems ...Value) *ArrayValue {
	if elems == nil {
		elems = []Value{}
	}
	return &ArrayValue{Elems: elems}
}

func (a *ArrayValue) Type() Tag    { return TagArray }
func (a *ArrayValue) Truthy() bool { return len(a.Elems) > 0 }
func (a *ArrayValue) Len() int     { return len(a.Elems) }

func (a *ArrayValue) String() string {
	return JSONForm(a)
}

func (a *ArrayValue) Clone() Value {
	out := make([]Value, len(a.Elems))
	for i, e := range a.Elems {
		out[i] = e.Clone()
	}
	return &ArrayValue{Elems: out}
}

func (a *ArrayValue) Equal(other Value) bool {
	o, ok := other.(*ArrayValue)
	if !ok || len(o.Elems) != len(a.Elems) {
		return false
	}
	for i := range a.Elems {
		if !DeepEqual(a.Elems[i], o.Elems[i]) {
			return false
		}
	}
	return true
}

// Normalize resolves a possibly-negative index against the array's length.
// Returns the resolved index and whether it is in bounds.
func (a *ArrayValue) Normalize(idx int64) (int, bool) {
	n := int64(len(a.Elems))
	if idx < 0 {
		idx += n
	}
	if idx < 0 || idx >= n {
		return 0, false
	}
	return int(idx), true
}

// Get reads the element at idx (negative counts from the end); out-of-range
// reads return Null (spec 4.8).
func (a *ArrayValue) Get(idx int64) Value {
	i, ok := a.Normalize(idx)
	if !ok {
		return Null
	}
	return a.Elems[i]
}

// Set writes the element at idx (negative counts from the end). Returns
// false if idx is out of range, which the evaluator reports as an error.
func (a *ArrayValue) Set(idx int64, v Value) bool {
	i, ok := a.Normalize(idx)
	if !ok {
		return false
	}
	a.Elems[i] = v
	return true
}

// Insert places v at idx (negative counts from the end), shifting later
// elements right. idx == len(Elems) appends.
func (a *ArrayValue) Insert(idx int64, v Value) bool {
	n := int64(len(a.Elems))
	if idx < 0 {
		idx += n
	}
	if idx < 0 || idx > n {
		return false
	}
	a.Elems = append(a.Elems, nil)
	copy(a.Elems[idx+1:], a.Elems[idx:])
	a.Elems[idx] = v
	return true
}

// Append adds v to the end of the array.
func (a *ArrayValue) Append(v Value) {
	a.Elems = append(a.Elems, v)
}

// RemoveAt deletes the element at idx (negative counts from the end).
func (a *ArrayValue) RemoveAt(idx int64) bool {
	i, ok := a.Normalize(idx)
	if !ok {
		return false
	}
	a.Elems = append(a.Elems[:i], a.Elems[i+1:]...)
	return true
}

// RemoveValue deletes every element deep-equal to v, returning the count
// removed.
func (a *ArrayValue) RemoveValue(v Value) int {
	out := a.Elems[:0]
	removed := 0
	for _, e := range a.Elems {
		if DeepEqual(e, v) {
			removed++
			continue
		}
		out = append(out, e)
	}
	a.Elems = out
	return removed
}

// Contains reports whether v is deep-equal to any element.
func (a *ArrayValue) Contains(v Value) bool {
	for _, e := range a.Elems {
		if DeepEqual(e, v) {
			return true
		}
	}
	return false
}
