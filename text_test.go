package efield

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestLoadTTFFont(t *testing.T) {
	f, err := LoadTTFFont(goregular.TTF, 20)
	if err != nil {
		t.Fatalf("LoadTTFFont: %v", err)
	}
	if f.lh <= 0 {
		t.Errorf("line height = %v, want > 0", f.lh)
	}
	w, h := f.MeasureString("Q1: 0.5 nC")
	if w <= 0 || h <= 0 {
		t.Errorf("MeasureString = (%v, %v), want positive", w, h)
	}
	wide, _ := f.MeasureString("Q1: -0.55 nC")
	if wide <= w {
		t.Errorf("longer label measured %v, not wider than %v", wide, w)
	}
}

func TestLoadTTFFontInvalid(t *testing.T) {
	if _, err := LoadTTFFont([]byte("not a font"), 12); err == nil {
		t.Error("expected error for invalid font data")
	}
}

func TestLoadDefaultFonts(t *testing.T) {
	glyph, label, err := loadDefaultFonts()
	if err != nil {
		t.Fatal(err)
	}
	if glyph.face.Size != glyphFontSize || label.face.Size != labelFontSize {
		t.Errorf("sizes = %v/%v, want %v/%v", glyph.face.Size, label.face.Size, glyphFontSize, labelFontSize)
	}
}
