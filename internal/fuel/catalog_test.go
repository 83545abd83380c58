package fuel

import "testing"

func TestLookupAllCodes(t *testing.T) {
	for _, c := range []Code{C1, C2, C3, C4, C5, C6, C7, D1, D2, M1, M2, M3, M4, O1a, O1b, S1, S2, S3} {
		spec, err := Lookup(c)
		if err != nil {
			t.Errorf("%s: unexpected error %v", c, err)
			continue
		}
		if spec.Code != c {
			t.Errorf("%s: spec.Code = %s", c, spec.Code)
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup(Code("C99"))
	if err == nil {
		t.Fatal("expected error for unknown fuel type")
	}
	if _, ok := err.(*ErrUnknownFuelType); !ok {
		t.Errorf("expected *ErrUnknownFuelType, got %T", err)
	}
}

func TestLookupStringUnknown(t *testing.T) {
	if _, err := LookupString("bogus"); err == nil {
		t.Fatal("expected error for unrecognized string")
	}
}

func TestMixedwoodSentinel(t *testing.T) {
	for _, c := range []Code{M1, M2} {
		spec, err := Lookup(c)
		if err != nil {
			t.Fatal(err)
		}
		if spec.Behavior != BehaviorMixedwood {
			t.Errorf("%s: want BehaviorMixedwood, got %v", c, spec.Behavior)
		}
		if spec.A != 0 || spec.B != 0 || spec.C != 0 {
			t.Errorf("%s: expected zeroed a/b/c, got a=%v b=%v c=%v", c, spec.A, spec.B, spec.C)
		}
	}
}

func TestAllReturnsEighteen(t *testing.T) {
	if n := len(All()); n != 18 {
		t.Errorf("All() returned %d fuel types, want 18", n)
	}
}
