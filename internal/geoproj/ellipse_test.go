package geoproj

import (
	"math"
	"testing"
)

func TestLengthToBreadthRatioFloor(t *testing.T) {
	if lbr := LengthToBreadthRatio(0); lbr != 1.0 {
		t.Errorf("LBR(0) = %v, want 1.0", lbr)
	}
	if lbr := LengthToBreadthRatio(-5); lbr != 1.0 {
		t.Errorf("LBR(-5) = %v, want 1.0", lbr)
	}
}

func TestLengthToBreadthRatioIncreasesWithWind(t *testing.T) {
	low := LengthToBreadthRatio(5)
	high := LengthToBreadthRatio(40)
	if !(low >= 1.0 && high > low) {
		t.Errorf("LBR(5)=%v, LBR(40)=%v; want 1<=low<high", low, high)
	}
}

func TestEccentricityBounds(t *testing.T) {
	if e := Eccentricity(1.0); e != 0.0 {
		t.Errorf("Eccentricity(1.0) = %v, want 0", e)
	}
	e := Eccentricity(3.0)
	if e <= 0.0 || e >= 1.0 {
		t.Errorf("Eccentricity(3.0) = %v, want in (0,1)", e)
	}
}

func TestBackFlankOrdering(t *testing.T) {
	const head = 20.0
	lbr := LengthToBreadthRatio(30)
	back := BackROS(head, lbr)
	flank := FlankROS(head, lbr)
	if !(back <= flank && flank <= head) {
		t.Errorf("back=%v flank=%v head=%v; want back<=flank<=head", back, flank, head)
	}
}

func TestEllipseAreaClosedForm(t *testing.T) {
	// S7: calculate_ellipse_area(head=5, lbr=1, hours=1) ~= pi*300^2/10000
	got := EllipseAreaHectares(5, 1, 1)
	want := math.Pi * 300.0 * 300.0 / 10000.0
	if math.Abs(got-want) > 1e-6 {
		t.Errorf("EllipseAreaHectares(5,1,1) = %v, want %v", got, want)
	}
}

func TestDirectionalROSAtHeadEqualsSemiMajor(t *testing.T) {
	a, b := 30.0, 10.0
	got := DirectionalROS(a, b, 0)
	if math.Abs(got-a) > 1e-9 {
		t.Errorf("DirectionalROS at head = %v, want %v", got, a)
	}
}

func TestDirectionalROSAtFlankEqualsSemiMinor(t *testing.T) {
	a, b := 30.0, 10.0
	got := DirectionalROS(a, b, 90)
	if math.Abs(got-b) > 1e-9 {
		t.Errorf("DirectionalROS at flank = %v, want %v", got, b)
	}
}

