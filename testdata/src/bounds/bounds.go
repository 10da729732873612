package bounds

func negativeIndex(a []int) int {
	i := -1
	return a[i] // want `CB001: index is always negative`
}

func narrowConstant(a []int) int {
	i := int8(-1)
	return a[i] // want `CB001: index is always negative`
}

func negativeSlice(s string) string {
	n := 0
	n--
	return s[n:] // want `CB002: slice bound is always negative`
}

func divZero(a int) (q int) {
	var d int
	q = a / d // want `CB010: integer division by zero`
	return
}

func squared(a []int) int {
	i := -1
	i = i * i
	return a[i]
}

func loop(a []int) (sum int) {
	for i := len(a) - 1; i >= 0; i-- {
		sum += a[i]
	}
	return
}

func escaped(a []int) int {
	i := -1
	set(&i)
	return a[i]
}

func set(p *int) { *p = 0 }

func closure(a []int) func() int {
	return func() int {
		j := -3
		return a[j] // want `CB001: index is always negative`
	}
}

func unreachable(a []int) int {
	panic("unreachable")
	i := -1
	return a[i]
}

func mapIndex(m map[int]string) string {
	k := -1
	return m[k]
}

func unsigned(a []int, u uint) int {
	u--
	return a[u]
}

func alias(a []int) int {
	x := 0
	p := &x
	x = -1
	*p = 3
	return a[x]
}

func closureWrite(a []int) int {
	n := 0
	set := func() { n = 2 }
	n = -1
	set()
	return a[n]
}
