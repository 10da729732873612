package main

func average(a []int) int {
	n := 0
	total := 0
	for _, v := range a {
		total += v
	}
	return total / n // finding: CB010
}

func ratio(a, b int) int {
	if b == 0 {
		return 0
	}
	return a / b
}

func remainder(a int) int {
	var m int
	a %= m // finding: CB010
	return a
}

func floats(a float64) float64 {
	var z float64
	return a / z
}
