// Package bag provides the 7-bag piece randomizer.
package bag

import (
	"math/rand"
	"time"

	"github.com/samdwyer/blockfall/internal/piece"
)

// Bag deals shapes so that every shape appears once per shuffled set of seven.
// It keeps one shape buffered ahead of the current draw for the preview.
//
// Because the preview is popped right after each draw, the bag empties and is
// reshuffled one draw earlier than a plain queue would. Sequencing is unchanged:
// each refill is still a full permutation.
type Bag struct {
	queue   []piece.Shape
	next    piece.Shape
	hasNext bool
	rng     *rand.Rand
}

// New creates an empty bag. A nil rng uses a time-seeded source.
func New(rng *rand.Rand) *Bag {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Bag{
		queue: make([]piece.Shape, 0, piece.Count),
		rng:   rng,
	}
}

// Next returns the shape to play now and buffers the one after it.
func (b *Bag) Next() piece.Shape {
	b.refillIfEmpty()

	var current piece.Shape
	if b.hasNext {
		current = b.next
	} else {
		current = b.pop()
	}

	b.next = b.pop()
	b.hasNext = true
	return current
}

// Peek returns the buffered preview shape, or false before the first draw.
func (b *Bag) Peek() (piece.Shape, bool) {
	return b.next, b.hasNext
}

// Remaining returns the number of shapes left in the current set.
func (b *Bag) Remaining() int {
	return len(b.queue)
}

// refillIfEmpty loads a shuffled permutation of all shapes into an empty queue.
func (b *Bag) refillIfEmpty() {
	if len(b.queue) > 0 {
		return
	}
	for s := piece.Shape(0); s < piece.Count; s++ {
		b.queue = append(b.queue, s)
	}
	b.rng.Shuffle(len(b.queue), func(i, j int) {
		b.queue[i], b.queue[j] = b.queue[j], b.queue[i]
	})
}

// pop removes and returns the last shape in the queue.
func (b *Bag) pop() piece.Shape {
	last := len(b.queue) - 1
	s := b.queue[last]
	b.queue = b.queue[:last]
	return s
}
