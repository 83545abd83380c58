package firesimutil

import "testing"

func validCfg() *Cfg {
	cfg := InitializeConfig()
	cfg.Set("IgnitionLat", 51.0)
	cfg.Set("IgnitionLng", -114.0)
	cfg.Set("DurationHours", 2.0)
	cfg.Set("SnapshotIntervalMinutes", 30.0)
	cfg.Set("DefaultFuel", "C2")
	return cfg
}

func TestValidateConfigAccepts(t *testing.T) {
	if err := ValidateConfig(validCfg()); err != nil {
		t.Fatalf("expected valid config to pass, got %v", err)
	}
}

func TestValidateConfigRejectsDurationOutOfRange(t *testing.T) {
	cfg := validCfg()
	cfg.Set("DurationHours", 25.0)
	if err := ValidateConfig(cfg); err == nil {
		t.Error("expected error for DurationHours > 24")
	}

	cfg.Set("DurationHours", 0.0)
	if err := ValidateConfig(cfg); err == nil {
		t.Error("expected error for DurationHours == 0")
	}
}

func TestValidateConfigRejectsIntervalOutOfRange(t *testing.T) {
	cfg := validCfg()
	cfg.Set("SnapshotIntervalMinutes", 121.0)
	if err := ValidateConfig(cfg); err == nil {
		t.Error("expected error for SnapshotIntervalMinutes > 120")
	}
}

func TestValidateConfigRejectsBadLatLng(t *testing.T) {
	cfg := validCfg()
	cfg.Set("IgnitionLat", 91.0)
	if err := ValidateConfig(cfg); err == nil {
		t.Error("expected error for out-of-range latitude")
	}

	cfg = validCfg()
	cfg.Set("IgnitionLng", 181.0)
	if err := ValidateConfig(cfg); err == nil {
		t.Error("expected error for out-of-range longitude")
	}
}

func TestValidateConfigRejectsUnknownFuel(t *testing.T) {
	cfg := validCfg()
	cfg.Set("DefaultFuel", "ZZ")
	if err := ValidateConfig(cfg); err == nil {
		t.Error("expected error for unknown default fuel code")
	}
}

func TestBuildSimulationConfigRoundTrip(t *testing.T) {
	cfg := validCfg()
	simCfg, err := BuildSimulationConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if simCfg.IgnitionLat != 51.0 || simCfg.IgnitionLng != -114.0 {
		t.Errorf("ignition point = (%v, %v), want (51.0, -114.0)", simCfg.IgnitionLat, simCfg.IgnitionLng)
	}
	if simCfg.DurationHours != 2.0 {
		t.Errorf("DurationHours = %v, want 2.0", simCfg.DurationHours)
	}
}
