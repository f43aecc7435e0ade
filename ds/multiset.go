package ds

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// Multiset is a counted bag of ordered values. Distinct values are kept
// sorted so that callers can scan them in ascending order, while
// membership and removal are map lookups.
type Multiset[T constraints.Ordered] struct {
	counts   map[T]int
	distinct []T
	len      int
}

func NewMultiset[T constraints.Ordered](ts []T) *Multiset[T] {
	r := &Multiset[T]{
		counts: make(map[T]int, len(ts)),
	}
	for _, t := range ts {
		if r.counts[t] == 0 {
			r.distinct = append(r.distinct, t)
		}
		r.counts[t]++
	}
	sort.Slice(
		r.distinct,
		func(i, j int) bool {
			return r.distinct[i] < r.distinct[j]
		},
	)
	r.len = len(ts)
	return r
}

func (r *Multiset[T]) Len() int {
	return r.len
}

func (r *Multiset[T]) Count(t T) int {
	return r.counts[t]
}

func (r *Multiset[T]) Contains(t T) bool {
	return r.counts[t] > 0
}

// Remove drops one occurrence of t and reports whether there was one.
func (r *Multiset[T]) Remove(t T) bool {
	count := r.counts[t]
	if count == 0 {
		return false
	}
	r.len--
	if count > 1 {
		r.counts[t] = count - 1
		return true
	}
	delete(r.counts, t)
	i := sort.Search(
		len(r.distinct),
		func(i int) bool {
			return r.distinct[i] >= t
		},
	)
	r.distinct = append(r.distinct[:i], r.distinct[i+1:]...)
	return true
}

// Distinct returns the distinct values in ascending order.
func (r *Multiset[T]) Distinct() []T {
	return ShallowCopy(r.distinct)
}

// Values returns every value, repeated by its count, in ascending order.
func (r *Multiset[T]) Values() []T {
	ts := make([]T, 0, r.len)
	for _, t := range r.distinct {
		ts = append(ts, Repeat(r.counts[t], t)...)
	}
	return ts
}
