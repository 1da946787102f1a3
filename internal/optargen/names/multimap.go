package names

import (
	"iter"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/emirpasic/gods/sets/linkedhashset"
)

// multiMap maps a key to a set of values. Both keys and values are iterated
// in insertion order.
type multiMap[K, V comparable] struct {
	m *linkedhashmap.Map // key: K, value: *linkedhashset.Set of V
}

func newMultiMap[K, V comparable]() *multiMap[K, V] {
	return &multiMap[K, V]{m: linkedhashmap.New()}
}

func (m *multiMap[K, V]) Add(k K, v V) {
	vs, ok := m.m.Get(k)
	if !ok {
		vs = linkedhashset.New()
		m.m.Put(k, vs)
	}
	vs.(*linkedhashset.Set).Add(v)
}

func (m *multiMap[K, V]) Get(k K) []V {
	vset, ok := m.m.Get(k)
	if !ok {
		return nil
	}

	var vs []V
	for it := vset.(*linkedhashset.Set).Iterator(); it.Next(); {
		vs = append(vs, it.Value().(V))
	}
	return vs
}

// Keys iterates keys in insertion order.
func (m *multiMap[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for it := m.m.Iterator(); it.Next(); {
			if !yield(it.Key().(K)) {
				return
			}
		}
	}
}

func (m *multiMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for it := m.m.Iterator(); it.Next(); {
			k := it.Key().(K)
			vs := it.Value().(*linkedhashset.Set)
			for it := vs.Iterator(); it.Next(); {
				if !yield(k, it.Value().(V)) {
					return
				}
			}
		}
	}
}
