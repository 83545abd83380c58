package fwi

import "testing"

func TestISIRange(t *testing.T) {
	// S1: ISI(ffmc=90, wind=20) in (8.0, 15.0)
	isi := CalculateISI(90, 20)
	if isi <= 8.0 || isi >= 15.0 {
		t.Errorf("ISI = %v, want in (8.0, 15.0)", isi)
	}
}

func TestBUIZero(t *testing.T) {
	// S2: BUI(0,0) = 0
	if bui := CalculateBUI(0, 0); bui != 0 {
		t.Errorf("BUI(0,0) = %v, want 0", bui)
	}
}

func TestBUIRange(t *testing.T) {
	// S2: BUI(20,200) in (0,40)
	bui := CalculateBUI(20, 200)
	if bui <= 0 || bui >= 40 {
		t.Errorf("BUI(20,200) = %v, want in (0,40)", bui)
	}
}

func TestCalculateDailyInvalidMonth(t *testing.T) {
	c := NewCalculator()
	for _, m := range []int{0, -1, 13, 100} {
		if _, err := c.CalculateDaily(20, 50, 10, 0, m); err == nil {
			t.Errorf("month=%d: expected error", m)
		}
	}
}

func TestResetRestoresStartup(t *testing.T) {
	c := NewCalculator()
	if _, err := c.CalculateDaily(25, 30, 20, 0, 7); err != nil {
		t.Fatal(err)
	}
	ffmc, dmc, dc := c.State()
	if ffmc == DefaultFFMC && dmc == DefaultDMC && dc == DefaultDC {
		t.Fatal("state did not change after CalculateDaily")
	}

	c.Reset(DefaultFFMC, DefaultDMC, DefaultDC)
	ffmc, dmc, dc = c.State()
	if ffmc != DefaultFFMC || dmc != DefaultDMC || dc != DefaultDC {
		t.Errorf("Reset did not restore defaults: got (%v,%v,%v)", ffmc, dmc, dc)
	}
}

func TestSequenceFFMCResponseToWeather(t *testing.T) {
	// S8: three-day sequence, all July.
	c := NewCalculator()

	day1, err := c.CalculateDaily(20, 50, 15, 0, 7)
	if err != nil {
		t.Fatal(err)
	}
	day2, err := c.CalculateDaily(30, 20, 25, 0, 7)
	if err != nil {
		t.Fatal(err)
	}
	day3, err := c.CalculateDaily(15, 80, 5, 15, 7)
	if err != nil {
		t.Fatal(err)
	}

	if !(day2.FFMC > day1.FFMC) {
		t.Errorf("expected ffmc_day2 (%v) > ffmc_day1 (%v)", day2.FFMC, day1.FFMC)
	}
	if !(day3.FFMC < day2.FFMC) {
		t.Errorf("expected ffmc_day3 (%v) < ffmc_day2 (%v)", day3.FFMC, day2.FFMC)
	}
}

func TestFWIComponentsNonNegative(t *testing.T) {
	c := NewCalculator()
	res, err := c.CalculateDaily(22, 45, 12, 2, 6)
	if err != nil {
		t.Fatal(err)
	}
	if res.DMC < 0 || res.DC < 0 || res.ISI < 0 || res.BUI < 0 || res.FWI < 0 {
		t.Errorf("expected all non-negative components, got %+v", res)
	}
	if res.FFMC < 0 || res.FFMC > 101 {
		t.Errorf("FFMC out of [0,101]: %v", res.FFMC)
	}
}
