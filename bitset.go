package spark

import "math/bits"

// wordBits is the number of particle slots tracked per liveness word.
const wordBits = 32

// aliveSet is a fixed-size bit vector with one bit per particle slot,
// packed into 32-bit words. Bit i of word w tracks slot w*32+i.
type aliveSet []uint32

// newAliveSet returns a cleared set able to track n slots.
func newAliveSet(n int) aliveSet {
	return make(aliveSet, (n+wordBits-1)/wordBits)
}

func (s aliveSet) test(i int) bool {
	return s[i/wordBits]&(1<<(uint(i)%wordBits)) != 0
}

func (s aliveSet) set(i int) {
	s[i/wordBits] |= 1 << (uint(i) % wordBits)
}

func (s aliveSet) clear(i int) {
	s[i/wordBits] &^= 1 << (uint(i) % wordBits)
}

// reset clears every bit.
func (s aliveSet) reset() {
	for i := range s {
		s[i] = 0
	}
}

// count returns the number of set bits.
func (s aliveSet) count() int {
	n := 0
	for _, w := range s {
		n += bits.OnesCount32(w)
	}
	return n
}
