package playlist

import (
	"github.com/samber/lo"
	"github.com/samber/lo/mutable"
)

// ShuffleFunc permutes indices in place.
type ShuffleFunc func([]int)

// RandomShuffle shuffles s in place with a uniform random permutation.
func RandomShuffle(s []int) {
	mutable.Shuffle(s)
}

// Order is the traversal order used by next/previous. In linear mode it is
// the queue order; in shuffled mode it is a permutation fixed at the moment
// shuffle was enabled. The display order of the queue never changes.
type Order struct {
	seq      []int // seq[position] = queue index
	pos      []int // pos[queue index] = position in seq
	shuffled bool
	shuffle  ShuffleFunc
}

// NewOrder creates a linear order over n tracks. A nil shuffle uses RandomShuffle.
func NewOrder(n int, shuffle ShuffleFunc) *Order {
	if shuffle == nil {
		shuffle = RandomShuffle
	}
	o := &Order{shuffle: shuffle}
	o.setSeq(lo.Range(n))
	return o
}

// Len returns the number of tracks covered by the order.
func (o *Order) Len() int {
	return len(o.seq)
}

// Shuffled reports whether the order is a shuffle permutation.
func (o *Order) Shuffled() bool {
	return o.shuffled
}

// Shuffle regenerates the permutation. The current track (if >= 0) is put
// first and only the remaining tracks are shuffled, so advancing never
// lands on the current track again right away.
func (o *Order) Shuffle(current int) {
	n := len(o.seq)
	seq := lo.Range(n)
	if current >= 0 && current < n {
		seq[0], seq[current] = seq[current], seq[0]
		o.shuffle(seq[1:])
	} else {
		o.shuffle(seq)
	}
	o.shuffled = true
	o.setSeq(seq)
}

// Linear restores the queue order.
func (o *Order) Linear() {
	o.shuffled = false
	o.setSeq(lo.Range(len(o.seq)))
}

// Sequence returns a copy of the traversal order as queue indices.
func (o *Order) Sequence() []int {
	out := make([]int, len(o.seq))
	copy(out, o.seq)
	return out
}

// Next returns the queue index after index in traversal order. At the end
// it wraps to the first position when wrap is set, otherwise it reports false.
func (o *Order) Next(index int, wrap bool) (int, bool) {
	return o.step(index, 1, wrap)
}

// Prev returns the queue index before index in traversal order. At the
// start it wraps to the last position when wrap is set, otherwise it
// reports false.
func (o *Order) Prev(index int, wrap bool) (int, bool) {
	return o.step(index, -1, wrap)
}

func (o *Order) step(index, delta int, wrap bool) (int, bool) {
	n := len(o.seq)
	if index < 0 || index >= n {
		return -1, false
	}
	p := o.pos[index] + delta
	if p < 0 || p >= n {
		if !wrap {
			return -1, false
		}
		p = (p + n) % n
	}
	return o.seq[p], true
}

func (o *Order) setSeq(seq []int) {
	o.seq = seq
	o.pos = make([]int, len(seq))
	for p, idx := range seq {
		o.pos[idx] = p
	}
}
