package gconf

import (
	"clickchess/src/coord"
	"clickchess/src/logic/convert/convlayout"
	"clickchess/ui/gui/gbase/gos"
	"encoding/json"
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const DefaultFile = "clickchess.json"

type Config struct {
	Theme    string  `json:"theme" yaml:"theme"`         // light/dark
	CellSize float64 `json:"cell_size" yaml:"cell_size"` // world units per square
	WindowH  int     `json:"window_h" yaml:"window_h"`   //
	WindowW  int     `json:"window_w" yaml:"window_w"`   //
	Debug    bool    `json:"debug" yaml:"debug"`         // debug overlay at start
	Layout   string  `json:"layout" yaml:"layout"`       // starting layout string
}

func defaultConfig() Config {
	return Config{
		Theme:    "light",
		CellSize: coord.GridScale,
		WindowH:  640,
		WindowW:  640,
		Debug:    false,
		Layout:   convlayout.StartLayout,
	}
}

func isYAML(file string) bool {
	ext := strings.ToLower(filepath.Ext(file))
	return ext == ".yaml" || ext == ".yml"
}

// NewGUIConfig reads file, JSON or YAML by extension. A missing file gives
// the defaults.
func NewGUIConfig(file string) (*Config, error) {
	if file == "" {
		file = DefaultFile
	}

	data, err := gos.ReadFile(file)
	if gos.IsNotExist(err) {
		def := defaultConfig()
		return &def, nil
	} else if err != nil {
		return nil, err
	}

	c := defaultConfig()
	if isYAML(file) {
		err = yaml.Unmarshal(data, &c)
	} else {
		err = json.Unmarshal(data, &c)
	}
	if err != nil {
		return nil, fmt.Errorf("error decode config %s: %w", file, err)
	}
	correctableConfig(&c)

	return &c, nil
}

func (c *Config) Save(file string) error {
	if file == "" {
		file = DefaultFile
	}
	var (
		data []byte
		err  error
	)
	if isYAML(file) {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "    ")
	}
	if err != nil {
		return err
	}
	return gos.WriteFile(file, data)
}

// Grid is the board transform for the configured cell size.
func (c *Config) Grid() coord.Grid {
	return coord.NewGrid(c.CellSize)
}

// SetCellSize overrides the cell size and grows the window to fit.
func (c *Config) SetCellSize(size float64) {
	c.CellSize = size
	correctableConfig(c)
}

func correctableConfig(c *Config) {
	def := defaultConfig()
	if c.Theme != "light" && c.Theme != "dark" {
		c.Theme = def.Theme
	}
	// sprites are rasterised at whole pixels
	c.CellSize = math.Round(c.CellSize)
	if c.CellSize <= 0 {
		c.CellSize = def.CellSize
	}
	if c.Layout == "" {
		c.Layout = def.Layout
	}
	// tiles are centred on their square, so the board spans 9 cells around
	// the origin; keep one more cell of margin
	need := int(c.CellSize * 10)
	if c.WindowW < need {
		c.WindowW = need
	}
	if c.WindowH < need {
		c.WindowH = need
	}
}
