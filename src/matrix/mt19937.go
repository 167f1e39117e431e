package matrix

/*
	MT19937 is the 32-bit Mersenne Twister (Matsumoto & Nishimura, 1998)
	seeded with the reference init_genrand scheme.
	Intn uses masked rejection sampling: the output is masked to the smallest
	all-ones value covering n-1 and redrawn while it is still above n-1.
	This is the scheme numpy's legacy RandomState uses for choice(n) and randint,
	so the same seed produces the same sequence in both.
*/

const (
	mtN         = 624
	mtM         = 397
	mtMatrixA   = 0x9908b0df
	mtUpperMask = 0x80000000
	mtLowerMask = 0x7fffffff
)

//Source is a uniform integer generator
type Source interface {
	//Intn returns a value in [0,n)
	Intn(n int) int
}

type MT19937 struct {
	mt  [mtN]uint32
	pos int
}

//NewMT19937 creates the generator seeded with seed
func NewMT19937(seed uint32) *MT19937 {
	r := &MT19937{}
	r.Seed(seed)
	return r
}

//Seed resets the internal state
func (r *MT19937) Seed(seed uint32) {
	r.mt[0] = seed
	for i := 1; i < mtN; i++ {
		prev := r.mt[i-1]
		r.mt[i] = 1812433253*(prev^(prev>>30)) + uint32(i)
	}
	r.pos = mtN
}

//Uint32 returns the next tempered 32-bit output
func (r *MT19937) Uint32() uint32 {
	if r.pos >= mtN {
		r.twist()
	}
	y := r.mt[r.pos]
	r.pos++

	y ^= y >> 11
	y ^= (y << 7) & 0x9d2c5680
	y ^= (y << 15) & 0xefc60000
	y ^= y >> 18
	return y
}

//Intn returns a uniform value in [0,n), panics if n <= 0
func (r *MT19937) Intn(n int) int {
	if n <= 0 {
		panic("invalid argument to Intn")
	}
	hi := uint32(n - 1)
	//a single candidate consumes nothing
	if hi == 0 {
		return 0
	}
	mask := hi
	mask |= mask >> 1
	mask |= mask >> 2
	mask |= mask >> 4
	mask |= mask >> 8
	mask |= mask >> 16
	for {
		v := r.Uint32() & mask
		if v <= hi {
			return int(v)
		}
	}
}

//twist regenerates the whole state block
func (r *MT19937) twist() {
	for i := 0; i < mtN; i++ {
		y := (r.mt[i] & mtUpperMask) | (r.mt[(i+1)%mtN] & mtLowerMask)
		next := r.mt[(i+mtM)%mtN] ^ (y >> 1)
		if y&1 != 0 {
			next ^= mtMatrixA
		}
		r.mt[i] = next
	}
	r.pos = 0
}
