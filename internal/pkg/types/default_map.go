package types

// DefaultMap creates the value of a missing key on first access, so
// accumulators such as per-asset totals need no existence checks:
//
//	totals := NewDefaultMap[string](func() *big.Int { return new(big.Int) })
//	sum := totals.Get(code)
//	sum.Add(sum, amount)
type DefaultMap[K comparable, V any] struct {
	data     map[K]V
	newValue func() V
}

// NewDefaultMap returns an empty map that fills missing keys with newValue().
func NewDefaultMap[K comparable, V any](newValue func() V) DefaultMap[K, V] {
	return DefaultMap[K, V]{
		data:     make(map[K]V),
		newValue: newValue,
	}
}

// Get returns the value of key, storing a new one first when key is missing.
func (d *DefaultMap[K, V]) Get(key K) V {
	if v, ok := d.data[key]; ok {
		return v
	}

	v := d.newValue()
	d.data[key] = v
	return v
}

// Len returns the number of keys.
func (d *DefaultMap[K, V]) Len() int {
	return len(d.data)
}

// ToMap returns the underlying map. Later changes through d are visible in it.
func (d *DefaultMap[K, V]) ToMap() map[K]V {
	return d.data
}
