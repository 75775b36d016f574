// Package ranking orders reports by priority.
package ranking

import "civicsync-reporter/models"

// Prioritized is anything that carries an integer priority.
type Prioritized interface {
	GetPriority() int
}

// step is one unit of pending work: either a segment still to be sorted
// or a single pivot ready to be emitted.
type step[T Prioritized] struct {
	segment []T
	pivot   T
	emit    bool
}

type stack[T any] struct {
	items []T
}

func (s *stack[T]) isEmpty() bool { return len(s.items) == 0 }

func (s *stack[T]) push(item T) { s.items = append(s.items, item) }

func (s *stack[T]) pop() T {
	top := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return top
}

// Sort returns items ordered by non-decreasing priority.
//
// The first element of every segment is the pivot. Elements with a strictly
// lower priority go left of it, everything else (ties included) goes right,
// and the result is sort(less) + pivot + sort(greaterOrEqual). Partitions
// keep their relative order and ties land behind the pivot, so reports with
// equal priority come out in the order they went in. The input slice is
// never modified; a slice of length 0 or 1 is returned as is.
//
// Pending segments live on a heap-allocated stack, so descending or
// all-equal inputs cost O(n^2) comparisons but never exhaust the goroutine
// stack.
func Sort[T Prioritized](items []T) []T {
	if len(items) <= 1 {
		return items
	}

	out := make([]T, 0, len(items))
	var work stack[step[T]]
	work.push(step[T]{segment: items})

	for !work.isEmpty() {
		s := work.pop()
		if s.emit {
			out = append(out, s.pivot)
			continue
		}
		switch len(s.segment) {
		case 0:
			continue
		case 1:
			out = append(out, s.segment[0])
			continue
		}

		pivot := s.segment[0]
		var less, greaterOrEqual []T
		for _, item := range s.segment[1:] {
			if item.GetPriority() < pivot.GetPriority() {
				less = append(less, item)
			} else {
				greaterOrEqual = append(greaterOrEqual, item)
			}
		}

		// LIFO: push right to left so the left partition is emitted first.
		work.push(step[T]{segment: greaterOrEqual})
		work.push(step[T]{pivot: pivot, emit: true})
		work.push(step[T]{segment: less})
	}

	return out
}

// ByPriority sorts reports by ascending priority.
func ByPriority(reports []models.Report) []models.Report {
	return Sort(reports)
}
