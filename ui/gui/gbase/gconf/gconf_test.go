package gconf

import (
	"clickchess/src/coord"
	"clickchess/src/logic/convert/convlayout"
	"os"
	"path/filepath"
	"testing"
)

func TestMissingFileGivesDefaults(t *testing.T) {
	c, err := NewGUIConfig(filepath.Join(t.TempDir(), "none.json"))
	if err != nil {
		t.Fatalf("NewGUIConfig: %v", err)
	}
	if *c != defaultConfig() {
		t.Fatalf("config = %+v", *c)
	}
	if c.Grid().Scale != coord.GridScale {
		t.Fatalf("grid scale = %v", c.Grid().Scale)
	}
}

func TestLoadJSONCorrects(t *testing.T) {
	file := filepath.Join(t.TempDir(), "c.json")
	data := `{"theme":"purple","cell_size":80,"window_w":100,"window_h":2000,"debug":true}`
	if err := os.WriteFile(file, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	c, err := NewGUIConfig(file)
	if err != nil {
		t.Fatalf("NewGUIConfig: %v", err)
	}
	if c.Theme != "light" {
		t.Errorf("theme = %q", c.Theme)
	}
	if c.WindowW != 800 || c.WindowH != 2000 {
		t.Errorf("window = %dx%d", c.WindowW, c.WindowH)
	}
	if !c.Debug || c.Layout != convlayout.StartLayout {
		t.Errorf("config = %+v", *c)
	}
}

func TestLoadYAML(t *testing.T) {
	file := filepath.Join(t.TempDir(), "c.yaml")
	data := "theme: dark\ncell_size: 40\nlayout: kq/KQ\n"
	if err := os.WriteFile(file, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	c, err := NewGUIConfig(file)
	if err != nil {
		t.Fatalf("NewGUIConfig: %v", err)
	}
	if c.Theme != "dark" || c.CellSize != 40 || c.Layout != "kq/KQ" {
		t.Fatalf("config = %+v", *c)
	}
}

func TestBadJSON(t *testing.T) {
	file := filepath.Join(t.TempDir(), "c.json")
	if err := os.WriteFile(file, []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewGUIConfig(file); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	for _, name := range []string{"c.json", "c.yml"} {
		file := filepath.Join(t.TempDir(), name)
		c := defaultConfig()
		c.Theme = "dark"
		c.SetCellSize(30)
		if err := c.Save(file); err != nil {
			t.Fatalf("Save %s: %v", name, err)
		}
		got, err := NewGUIConfig(file)
		if err != nil {
			t.Fatalf("NewGUIConfig %s: %v", name, err)
		}
		if *got != c {
			t.Fatalf("%s: got %+v, want %+v", name, *got, c)
		}
	}
}

func TestCellSizeRounded(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{7.5, 8},
		{7.4, 7},
		{50, 50},
		{0.4, 50},
		{-3, 50},
	}
	for _, tt := range tests {
		c := defaultConfig()
		c.SetCellSize(tt.in)
		if c.CellSize != tt.want {
			t.Errorf("SetCellSize(%v) = %v, want %v", tt.in, c.CellSize, tt.want)
		}
		if c.Grid().Scale != tt.want {
			t.Errorf("Grid().Scale = %v, want %v", c.Grid().Scale, tt.want)
		}
	}
}
