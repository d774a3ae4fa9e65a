package world

// Point is a screen-space position.
type Point struct{ X, Y float64 }

const trailCap = 12

// Trail is a fixed-size ring buffer of recent positions.
// Push drops the oldest point once Len reaches the given limit.
type Trail struct {
	pts   [trailCap]Point
	start int
	n     int
}

// Push appends p, keeping at most limit points (limit <= 12).
func (t *Trail) Push(p Point, limit int) {
	if limit > trailCap {
		limit = trailCap
	}
	for t.n >= limit && t.n > 0 {
		t.start = (t.start + 1) % trailCap
		t.n--
	}
	if limit <= 0 {
		return
	}
	t.pts[(t.start+t.n)%trailCap] = p
	t.n++
}

func (t *Trail) Len() int { return t.n }

// At returns the i-th point, oldest first.
func (t *Trail) At(i int) Point {
	return t.pts[(t.start+i)%trailCap]
}

// Last returns the newest point.
func (t *Trail) Last() (Point, bool) {
	if t.n == 0 {
		return Point{}, false
	}
	return t.At(t.n - 1), true
}

func (t *Trail) Reset() {
	t.start, t.n = 0, 0
}
