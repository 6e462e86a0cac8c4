package engine

import "math/rand/v2"

// Shuffler permutes a fresh set of the seven shapes for the given refill cycle.
// It must be deterministic in cycle for snapshots to be replayable.
type Shuffler func(cycle uint64, shapes []Shape)

// SeededShuffler returns a Shuffler backed by a PCG generator keyed on seed and cycle, so every
// refill is reproducible without carrying generator state between snapshots.
func SeededShuffler(seed uint64) Shuffler {
	return func(cycle uint64, shapes []Shape) {
		rng := rand.New(rand.NewPCG(seed, cycle))
		rng.Shuffle(len(shapes), func(i, j int) {
			shapes[i], shapes[j] = shapes[j], shapes[i]
		})
	}
}

// Bag is the 7-bag randomizer. Each cycle deals every shape exactly once.
// The zero value deals shapes in canonical order.
type Bag struct {
	queue   []Shape
	shuffle Shuffler
	cycle   uint64
}

// NewBag creates a bag whose refills are shuffled by a generator seeded with seed
func NewBag(seed uint64) Bag {
	return NewBagWithShuffler(SeededShuffler(seed))
}

// NewBagWithShuffler creates a bag that uses the given shuffler for every refill
func NewBagWithShuffler(shuffle Shuffler) Bag {
	return Bag{shuffle: shuffle}
}

// refill returns the bag with a freshly shuffled queue for the next cycle.
// A new backing array is allocated so earlier snapshots keep their queue.
func (b Bag) refill() Bag {
	queue := make([]Shape, len(Shapes))
	copy(queue, Shapes[:])
	if b.shuffle != nil {
		b.shuffle(b.cycle, queue)
	}
	return Bag{queue: queue, shuffle: b.shuffle, cycle: b.cycle + 1}
}

// Draw returns the next shape and the bag without it, refilling first if the bag is empty
func (b Bag) Draw() (Shape, Bag) {
	if len(b.queue) == 0 {
		b = b.refill()
	}
	return b.queue[0], Bag{queue: b.queue[1:], shuffle: b.shuffle, cycle: b.cycle}
}

// Preview returns the next n shapes that Draw would deal, without consuming them
func (b Bag) Preview(n int) []Shape {
	if n <= 0 {
		return nil
	}
	shapes := make([]Shape, 0, n)
	for range n {
		var shape Shape
		shape, b = b.Draw()
		shapes = append(shapes, shape)
	}
	return shapes
}

// Remaining returns the number of shapes left before the next refill
func (b Bag) Remaining() int {
	return len(b.queue)
}

// Cycle returns how many times the bag has been filled
func (b Bag) Cycle() uint64 {
	return b.cycle
}
