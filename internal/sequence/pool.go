package sequence

// pool holds the not-yet-placed photo indices of one orientation, in parse
// order. Removal preserves the order of the remaining entries.
type pool []int

func newPool(n int) pool {
	p := make(pool, n)
	for i := range p {
		p[i] = i
	}
	return p
}

// remove deletes the entry at position pos and returns it.
func (p *pool) remove(pos int) int {
	s := *p
	v := s[pos]
	copy(s[pos:], s[pos+1:])
	*p = s[:len(s)-1]
	return v
}

// takePair removes positions i and j (i != j), both addressed in the pool as
// it was before the call, and returns their entries in (i, j) order. When
// i < j the second position has shifted down by one after the first removal.
func (p *pool) takePair(i, j int) (int, int) {
	a := p.remove(i)
	if i < j {
		return a, p.remove(j - 1)
	}
	return a, p.remove(j)
}
