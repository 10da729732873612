package main

import "sort"

func sortedIndex(a []int, x int) int {
	i := -1
	sort.Slice(a, func(p, q int) bool {
		return a[p] < a[q]
	})
	update := func() { i = sort.SearchInts(a, x) }
	update()
	return a[i]
}

func literal() func([]int) int {
	return func(a []int) int {
		k := -1
		return a[k] // finding: CB001
	}
}

type cursor int

func (c *cursor) reset() { *c = 0 }

func pointerMethod(a []int) int {
	var c cursor = -1
	c.reset()
	return a[c]
}
