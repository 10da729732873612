package main

func countdown(a []int) (sum int) {
	for i := len(a) - 1; i >= 0; i-- {
		sum += a[i]
	}
	return sum
}

func doubling(a []int) int {
	step := 1
	for step < len(a) {
		step *= 2
	}
	return a[step-1]
}

func rangeKeys(a []int) int {
	last := 0
	for i := range a {
		last = i
	}
	return a[last]
}

func shrinking(a []int) []int {
	lo := 0
	for range a {
		lo--
	}
	return a[lo:]
}

func stuck(a []int) int {
	i := -1
	for j := 0; j < len(a); j++ {
		i *= 2
	}
	return a[i] // finding: CB001
}
