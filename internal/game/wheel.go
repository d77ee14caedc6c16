package game

import (
	"math/rand"
	"time"

	"bitrush_backend/internal/domain"
)

// Prize is one wheel segment. Weight is relative; equal weights make a
// uniform wheel.
type Prize struct {
	Label  string
	Reward domain.Reward
	Weight int
}

// Wheel draws prizes by weighted random selection. The generator is
// injectable so draws can be made deterministic in tests.
type Wheel struct {
	prizes []Prize
	total  int
	rng    *rand.Rand
}

// NewWheel builds a wheel over prizes. A nil rng falls back to a
// time-seeded source.
func NewWheel(prizes []Prize, rng *rand.Rand) *Wheel {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	w := &Wheel{prizes: prizes, rng: rng}
	for _, p := range prizes {
		w.total += p.Weight
	}
	return w
}

// Spin picks one prize by walking the cumulative weights.
func (w *Wheel) Spin() Prize {
	n := w.rng.Intn(w.total)
	for _, p := range w.prizes {
		n -= p.Weight
		if n < 0 {
			return p
		}
	}
	return w.prizes[len(w.prizes)-1]
}

// Prizes returns the segment table in wheel order.
func (w *Wheel) Prizes() []Prize {
	return w.prizes
}
