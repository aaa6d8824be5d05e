package chaikin

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lixenwraith/chaikin/vmath"
)

// ErrNegativeSteps is returned by BuildAnimation for a negative step count
var ErrNegativeSteps = errors.New("chaikin: max steps must be >= 0")

// LoopPolicy selects what playback does after the final generation
type LoopPolicy uint8

const (
	LoopWrap  LoopPolicy = iota // Continue at generation 0 on the next tick
	LoopReset                   // Same stepping as wrap, reported as a snap back to the raw points
	LoopHold                    // Stay on the final generation
)

var loopPolicyNames = map[LoopPolicy]string{
	LoopWrap:  "wrap",
	LoopReset: "reset",
	LoopHold:  "hold",
}

func (p LoopPolicy) String() string {
	if s, ok := loopPolicyNames[p]; ok {
		return s
	}
	return fmt.Sprintf("LoopPolicy(%d)", uint8(p))
}

// ParseLoopPolicy maps a case-insensitive name to a LoopPolicy
func ParseLoopPolicy(s string) (LoopPolicy, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for p, n := range loopPolicyNames {
		if n == name {
			return p, nil
		}
	}
	return LoopWrap, fmt.Errorf("unknown loop policy %q (want wrap, reset or hold)", s)
}

// Animation is the full list of generations for one control polygon
// Generation 0 is a copy of the control points; generation k is k passes of
// Subdivide. It is immutable once built.
type Animation struct {
	generations [][]vmath.Point
	closed      bool
}

// BuildAnimation precomputes maxSteps+1 generations from initial
func BuildAnimation(initial []vmath.Point, closed bool, maxSteps int) (*Animation, error) {
	if maxSteps < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeSteps, maxSteps)
	}

	gens := make([][]vmath.Point, 0, maxSteps+1)
	cur := vmath.ClonePoints(initial)
	gens = append(gens, cur)
	for range maxSteps {
		cur = Subdivide(cur, closed)
		gens = append(gens, cur)
	}

	return &Animation{generations: gens, closed: closed}, nil
}

// Len returns the number of generations, always MaxSteps()+1
func (a *Animation) Len() int { return len(a.generations) }

// MaxSteps returns the index of the final generation
func (a *Animation) MaxSteps() int { return len(a.generations) - 1 }

// Closed reports the mode the generations were built with
func (a *Animation) Closed() bool { return a.closed }

// Generation returns a copy of generation k, clamped to [0, MaxSteps]
func (a *Animation) Generation(k int) []vmath.Point {
	return vmath.ClonePoints(a.generations[a.clamp(k)])
}

// PointCount returns len(Generation(k)) without copying
func (a *Animation) PointCount(k int) int {
	return len(a.generations[a.clamp(k)])
}

// Initial returns a copy of generation 0
func (a *Animation) Initial() []vmath.Point { return a.Generation(0) }

// Final returns a copy of the last generation
func (a *Animation) Final() []vmath.Point { return a.Generation(a.MaxSteps()) }

// Next returns the step following step under policy
// wrapped is true when playback went from the final generation back to 0.
func (a *Animation) Next(step int, policy LoopPolicy) (next int, wrapped bool) {
	step = a.clamp(step)
	if step < a.MaxSteps() {
		return step + 1, false
	}
	if policy == LoopHold {
		return step, false
	}
	return 0, true
}

func (a *Animation) clamp(k int) int {
	if k < 0 {
		return 0
	}
	if k > a.MaxSteps() {
		return a.MaxSteps()
	}
	return k
}
