package config

import (
	"testing"

	"github.com/gomatetb/matetb/internal/chessrules"
)

func TestValidateDefaultMaterSideIsSideToMove(t *testing.T) {
	var cfg, err = Validate(Flags{EPD: "5k2/3Q4/3K4/8/8/8/8/6R1 w - -"})
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.MaterWhite {
		t.Errorf("MaterWhite = false, want true (white to move, no bm sign)")
	}
}

func TestValidateBMSignNegativeFlipsMaterSide(t *testing.T) {
	var cfg, err = Validate(Flags{EPD: "5k2/3Q4/3K4/8/8/8/8/6R1 w - - bm #-5;"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MaterWhite {
		t.Errorf("MaterWhite = true, want false (negative bm flips mater to black)")
	}
}

func TestValidateRejectsShortEPD(t *testing.T) {
	var _, err = Validate(Flags{EPD: "4k3/3Q4/4K3/8/8/8/8/8 w -"})
	if err == nil {
		t.Fatal("expected a validation error for a 3-field EPD")
	}
}

func TestValidateRejectsUnknownSquare(t *testing.T) {
	var _, err = Validate(Flags{
		EPD:         "5k2/3Q4/3K4/8/8/8/8/6R1 w - -",
		ExcludeFrom: "z9",
	})
	if err == nil {
		t.Fatal("expected a validation error for an unknown square token")
	}
}

func TestValidateAppliesKnownPresetWhenNoFlagsGiven(t *testing.T) {
	var cfg, err = Validate(Flags{EPD: "8/8/7p/5K1k/R7/8/8/8 w - -", Depth: UnboundedDepth})
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Filter.ExcludeAllowingCapture {
		t.Errorf("expected the preset's ExcludeAllowingCapture to be applied")
	}
	if cfg.Depth != 11 {
		t.Errorf("Depth = %d, want 11 from preset", cfg.Depth)
	}
}

func TestValidateOwnFlagsOverridePreset(t *testing.T) {
	var cfg, err = Validate(Flags{
		EPD:         "8/8/7p/5K1k/R7/8/8/8 w - -",
		ExcludeFrom: "a4",
	})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Filter.ExcludeAllowingCapture {
		t.Errorf("preset should not apply once the caller supplies its own restriction flags")
	}
	if !cfg.Filter.ExcludeFrom[chessrules.SquareA4] {
		t.Errorf("expected excludeFrom a4 to be parsed")
	}
}
