package status

import (
	"slices"
	"sync"
)

// MetricMap holds one lazily created *T per key
// Pointers are stable, callers may keep them and update through atomics
type MetricMap[T any] struct {
	items sync.Map // string -> *T
}

func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{}
}

// Get returns the metric for key, creating a zero value on first use
func (m *MetricMap[T]) Get(key string) *T {
	if v, ok := m.items.Load(key); ok {
		return v.(*T)
	}
	v, _ := m.items.LoadOrStore(key, new(T))
	return v.(*T)
}

func (m *MetricMap[T]) Has(key string) bool {
	_, ok := m.items.Load(key)
	return ok
}

// Range visits every metric in key order
func (m *MetricMap[T]) Range(fn func(key string, ptr *T)) {
	var keys []string
	m.items.Range(func(k, _ any) bool {
		keys = append(keys, k.(string))
		return true
	})
	slices.Sort(keys)
	for _, k := range keys {
		v, _ := m.items.Load(k)
		fn(k, v.(*T))
	}
}

func (m *MetricMap[T]) Count() int {
	n := 0
	m.items.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
