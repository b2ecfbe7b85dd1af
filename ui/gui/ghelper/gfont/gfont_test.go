package gfont

import "testing"

func TestLoadFonts(t *testing.T) {
	f, err := LoadFonts()
	if err != nil {
		t.Fatalf("LoadFonts: %v", err)
	}
	if f.Normal == nil || f.Mono == nil {
		t.Fatalf("missing face: %+v", f)
	}
	if m := f.Mono.Metrics(); m.Height <= 0 {
		t.Fatalf("mono height = %v", m.Height)
	}
}
