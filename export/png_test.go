package export

import (
	"errors"
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/chaikin/session"
	"github.com/lixenwraith/chaikin/vmath"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func lineSnapshot() session.Snapshot {
	pts := []vmath.Point{vmath.Pt(2, 10), vmath.Pt(30, 10)}
	return session.Snapshot{
		Points:   pts,
		MaxSteps: 6,
		Curve:    vmath.ClonePoints(pts),
	}
}

func TestFilename(t *testing.T) {
	snap := lineSnapshot()
	snap.Closed = true
	snap.Step = 3
	now := time.Unix(0, 1700000000123456789)

	if got, want := Filename(snap, now), "chaikin-closed-step3-1700000000123456789.png"; got != want {
		t.Errorf("Filename = %q, want %q", got, want)
	}
}

func TestLabel(t *testing.T) {
	snap := lineSnapshot()
	if got := Label(snap); got != "OPEN  control points 2" {
		t.Errorf("Idle label = %q", got)
	}

	snap.Animating = true
	snap.Step = 2
	if got := Label(snap); !strings.Contains(got, "step 2/6") {
		t.Errorf("Animating label = %q", got)
	}
}

func TestRenderPixels(t *testing.T) {
	img, err := Render(lineSnapshot(), 40, 20, 4)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	if b := img.Bounds(); b.Dx() != 160 || b.Dy() != 80 {
		t.Fatalf("Expected 160x80 image, got %v", b)
	}

	// Background
	if c := img.RGBAAt(150, 2); c.R != 0 || c.G != 0 || c.B != 0 {
		t.Errorf("Expected black background, got %v", c)
	}
	// Midway along the white segment
	if c := img.RGBAAt(64, 40); c.R < 200 || c.G < 200 || c.B < 200 {
		t.Errorf("Expected white curve pixel, got %v", c)
	}
	// Control point centre, gray over the curve
	if c := img.RGBAAt(8, 40); c.R < 110 || c.R > 145 || c.R != c.B {
		t.Errorf("Expected gray marker pixel, got %v", c)
	}
}

func TestRenderErrors(t *testing.T) {
	if _, err := Render(lineSnapshot(), 0, 10, 4); !errors.Is(err, ErrEmptyCanvas) {
		t.Errorf("Expected ErrEmptyCanvas, got %v", err)
	}
	if _, err := Render(lineSnapshot(), 10, 10, 0); !errors.Is(err, ErrEmptyCanvas) {
		t.Errorf("Expected ErrEmptyCanvas for zero scale, got %v", err)
	}
	if _, err := Render(session.Snapshot{}, 10, 10, 1); !errors.Is(err, ErrNoPoints) {
		t.Errorf("Expected ErrNoPoints, got %v", err)
	}
}

func TestSaveWritesPNG(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "frames")
	snap := lineSnapshot()
	now := time.Unix(5, 0)

	path, err := Save(snap, 40, 20, Options{Dir: dir, Scale: 2}, now)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if filepath.Dir(path) != dir || filepath.Base(path) != Filename(snap, now) {
		t.Errorf("Unexpected path %s", path)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 80 || b.Dy() != 40 {
		t.Errorf("Expected 80x40 image, got %v", b)
	}
}

func TestSaveBadDir(t *testing.T) {
	file := filepath.Join(t.TempDir(), "plain")
	if err := os.WriteFile(file, nil, 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Save(lineSnapshot(), 10, 10, Options{Dir: filepath.Join(file, "sub"), Scale: 1}, time.Now())
	if err == nil {
		t.Fatal("Expected error when export dir is under a regular file")
	}
}
