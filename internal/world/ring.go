package world

// ballRing is a fixed-capacity double-ended queue of balls.
// Index 0 is the front (newest), Len()-1 the back (oldest).
type ballRing struct {
	buf   [MaxBalls]Ball
	head  int // physical index of the front element
	count int
}

// Len returns the number of balls held.
func (r *ballRing) Len() int {
	return r.count
}

// Full reports whether the ring is at capacity.
func (r *ballRing) Full() bool {
	return r.count == len(r.buf)
}

// PushFront inserts b before the current front.
// The caller must make room first; pushing onto a full ring is a no-op.
func (r *ballRing) PushFront(b Ball) {
	if r.Full() {
		return
	}
	r.head = (r.head - 1 + len(r.buf)) % len(r.buf)
	r.buf[r.head] = b
	r.count++
}

// PopBack removes and returns the back ball.
func (r *ballRing) PopBack() (Ball, bool) {
	if r.count == 0 {
		return Ball{}, false
	}
	i := r.index(r.count - 1)
	b := r.buf[i]
	r.buf[i] = Ball{}
	r.count--
	return b, true
}

// At returns a pointer to the i-th ball from the front.
func (r *ballRing) At(i int) *Ball {
	return &r.buf[r.index(i)]
}

// Clear drops all balls.
func (r *ballRing) Clear() {
	*r = ballRing{}
}

func (r *ballRing) index(i int) int {
	return (r.head + i) % len(r.buf)
}
