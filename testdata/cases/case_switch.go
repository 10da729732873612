package main

import (
	"errors"
	"math/rand"
)

func branchSwitch(a []int) (int, error) {
	idx := 0
	switch v := rand.Intn(3); v {
	case 0:
		idx = -1
	case 1, 2:
		idx = v
	default:
		return 0, errors.New("unexpected value")
	}

	return a[idx], nil
}

func allNegative(a []int) int {
	idx := -1
	switch rand.Intn(3) {
	case 0:
		idx = -2
	case 1:
		idx--
	}

	return a[idx] // finding: CB001
}
