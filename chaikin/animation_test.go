package chaikin

import (
	"errors"
	"testing"

	"github.com/lixenwraith/chaikin/vmath"
)

func TestBuildAnimationLength(t *testing.T) {
	in := pts(0, 0, 10, 0, 10, 10)

	for k := 0; k <= 7; k++ {
		anim, err := BuildAnimation(in, true, k)
		if err != nil {
			t.Fatalf("k=%d: unexpected error: %v", k, err)
		}
		if anim.Len() != k+1 {
			t.Errorf("k=%d: Len() = %d, want %d", k, anim.Len(), k+1)
		}
		if anim.MaxSteps() != k {
			t.Errorf("k=%d: MaxSteps() = %d", k, anim.MaxSteps())
		}
		diff(t, in, anim.Initial())
	}
}

func TestBuildAnimationNegativeSteps(t *testing.T) {
	_, err := BuildAnimation(pts(0, 0, 1, 1), false, -1)
	if !errors.Is(err, ErrNegativeSteps) {
		t.Fatalf("Expected ErrNegativeSteps, got %v", err)
	}
}

func TestBuildAnimationOpenLine(t *testing.T) {
	anim, err := BuildAnimation(pts(0, 0, 10, 0), false, 1)
	if err != nil {
		t.Fatal(err)
	}

	diff(t, pts(0, 0, 10, 0), anim.Generation(0))
	diff(t, pts(0, 0, 2.5, 0, 7.5, 0, 10, 0), anim.Generation(1))
	diff(t, anim.Generation(1), anim.Final())
}

func TestBuildAnimationGenerationsChain(t *testing.T) {
	in := pts(3, 1, 9, 14, 20, 2, 31, 17)
	anim, err := BuildAnimation(in, false, 5)
	if err != nil {
		t.Fatal(err)
	}

	for k := 1; k < anim.Len(); k++ {
		diff(t, Subdivide(anim.Generation(k-1), false), anim.Generation(k))
		if anim.PointCount(k) != len(in)<<k {
			t.Errorf("Generation %d has %d points, want %d", k, anim.PointCount(k), len(in)<<k)
		}
	}
}

func TestBuildAnimationDeterministic(t *testing.T) {
	in := pts(0.1, 0.2, 13.7, 4.4, 8.25, 19.125, -3.3, 7.7)

	a, _ := BuildAnimation(in, true, 6)
	b, _ := BuildAnimation(in, true, 6)

	if a.Len() != b.Len() {
		t.Fatalf("Length mismatch %d != %d", a.Len(), b.Len())
	}
	for k := 0; k < a.Len(); k++ {
		ga, gb := a.Generation(k), b.Generation(k)
		for i := range ga {
			if ga[i] != gb[i] {
				t.Fatalf("Generation %d point %d differs: %v vs %v", k, i, ga[i], gb[i])
			}
		}
	}
}

func TestAnimationIsolatedFromCallers(t *testing.T) {
	in := pts(0, 0, 10, 0, 10, 10)
	anim, _ := BuildAnimation(in, true, 2)

	in[0] = vmath.Pt(99, 99)
	if anim.Generation(0)[0] != vmath.Pt(0, 0) {
		t.Error("Mutating the input changed generation 0")
	}

	g := anim.Generation(1)
	g[0] = vmath.Pt(-1, -1)
	if anim.Generation(1)[0] == vmath.Pt(-1, -1) {
		t.Error("Mutating a returned generation changed the animation")
	}
}

func TestAnimationGenerationClamps(t *testing.T) {
	anim, _ := BuildAnimation(pts(0, 0, 10, 0, 5, 5), true, 3)

	diff(t, anim.Generation(0), anim.Generation(-5))
	diff(t, anim.Generation(3), anim.Generation(42))
	if !anim.Closed() {
		t.Error("Expected Closed() to report build mode")
	}
}

func TestAnimationNext(t *testing.T) {
	anim, _ := BuildAnimation(pts(0, 0, 10, 0, 5, 5), true, 3)

	tests := []struct {
		policy      LoopPolicy
		step        int
		wantNext    int
		wantWrapped bool
	}{
		{LoopWrap, 0, 1, false},
		{LoopWrap, 2, 3, false},
		{LoopWrap, 3, 0, true},
		{LoopReset, 3, 0, true},
		{LoopReset, 1, 2, false},
		{LoopHold, 3, 3, false},
		{LoopHold, 2, 3, false},
		{LoopWrap, 9, 0, true},
	}

	for _, tt := range tests {
		next, wrapped := anim.Next(tt.step, tt.policy)
		if next != tt.wantNext || wrapped != tt.wantWrapped {
			t.Errorf("%v Next(%d) = (%d, %v), want (%d, %v)",
				tt.policy, tt.step, next, wrapped, tt.wantNext, tt.wantWrapped)
		}
	}
}

func TestAnimationNextZeroSteps(t *testing.T) {
	anim, _ := BuildAnimation(pts(0, 0, 10, 0, 5, 5), false, 0)

	next, wrapped := anim.Next(0, LoopWrap)
	if next != 0 || !wrapped {
		t.Errorf("Expected (0, true) for a single-generation loop, got (%d, %v)", next, wrapped)
	}
}

func TestParseLoopPolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    LoopPolicy
		wantErr bool
	}{
		{"wrap", LoopWrap, false},
		{" RESET ", LoopReset, false},
		{"Hold", LoopHold, false},
		{"bounce", LoopWrap, true},
		{"", LoopWrap, true},
	}

	for _, tt := range tests {
		got, err := ParseLoopPolicy(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLoopPolicy(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseLoopPolicy(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if LoopReset.String() != "reset" {
		t.Errorf("Unexpected String(): %s", LoopReset)
	}
}
