/*
File    : vivjson/value/block.go

BlockValue is VivJson's ordered string-keyed map. It serves as object,
record, and struct (spec 3.1), and also backs the evaluator's scope contents
when a scope is read as a Block (the "." trick, spec 4.4).
*/
package value

// BlockValue maps string keys to values, preserving the order of first
// insertion. Updating an existing key does not change its position.
type BlockValue struct {
	keys   []string
	values map[string]Value
}

// NewBlock returns an empty BlockValue.
func NewBlock() *BlockValue {
	return &BlockValue{values: make(map[string]Value)}
}

func (b *BlockValue) Type() Tag    { return TagBlock }
func (b *BlockValue) Truthy() bool { return len(b.keys) > 0 }
func (b *BlockValue) Len() int     { return len(b.keys) }

func (b *BlockValue) String() string {
	return JSONForm(b)
}

func (b *BlockValue) Clone() Value {
	out := NewBlock()
	for _, k := range b.keys {
		out.Set(k, b.values[k].Clone())
	}
	return out
}

func (b *BlockValue) Equal(other Value) bool {
	o, ok := other.(*BlockValue)
	if !ok || o.Len() != b.Len() {
		return false
	}
	for _, k := range b.keys {
		ov, ok := o.Get(k)
		if !ok || !DeepEqual(b.values[k], ov) {
			return false
		}
	}
	return true
}

// Get reads key, reporting whether it was present.
func (b *BlockValue) Get(key string) (Value, bool) {
	v, ok := b.values[key]
	return v, ok
}

// Set writes key, appending it to the key order if it is new.
func (b *BlockValue) Set(key string, v Value) {
	if _, ok := b.values[key]; !ok {
		b.keys = append(b.keys, key)
	}
	b.values[key] = v
}

// Delete removes key, reporting whether it was present.
func (b *BlockValue) Delete(key string) bool {
	if _, ok := b.values[key]; !ok {
		return false
	}
	delete(b.values, key)
	for i, k := range b.keys {
		if k == key {
			b.keys = append(b.keys[:i], b.keys[i+1:]...)
			break
		}
	}
	return true
}

// Keys returns the keys in insertion order. The returned slice is a copy;
// callers may not mutate the block through it.
func (b *BlockValue) Keys() []string {
	out := make([]string, len(b.keys))
	copy(out, b.keys)
	return out
}

// PublicKeys returns Keys() excluding private names (a single leading
// underscore), the set enumerated by `for (pair in .)` and `in .` (spec
// 3.3, 4.4).
func (b *BlockValue) PublicKeys() []string {
	var out []string
	for _, k := range b.keys {
		if len(k) == 0 || k[0] != '_' {
			out = append(out, k)
		}
	}
	return out
}

// Merge copies every key from other into b, overwriting on collision.
// Nested Block values are not merged recursively; callers wanting the `+`
// operator's recursive key-sum behavior implement that in eval.
func (b *BlockValue) Merge(other *BlockValue) {
	for _, k := range other.keys {
		v, _ := other.Get(k)
		b.Set(k, v)
	}
}
