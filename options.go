package arbor

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

const defaultClassPrefix = "arbor"

// GuideOptions configures the alignment guides used while dragging nodes.
type GuideOptions struct {
	Enabled     bool    `toml:"enabled"`
	Horizontal  bool    `toml:"horizontal"`
	Vertical    bool    `toml:"vertical"`
	Rounded     bool    `toml:"rounded"`
	Stroke      string  `toml:"stroke"`
	StrokeWidth float64 `toml:"stroke_width"`
	Dashed      bool    `toml:"dashed"`
}

// PageOptions configures the page layout and page break lines.
type PageOptions struct {
	Visible bool `toml:"visible"`
	// Width and Height are the page format in local units.
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	// Scale multiplies the page format.
	Scale float64 `toml:"scale"`
	// MinBreakDistance is the smallest on-screen page size that still
	// shows page breaks.
	MinBreakDistance float64 `toml:"min_break_distance"`
	BreakColor       string  `toml:"break_color"`
	BreakDashed      bool    `toml:"break_dashed"`
}

// Options configures a Graph. The zero value is not useful; start from
// DefaultOptions or LoadOptions.
type Options struct {
	ClassPrefix string  `toml:"class_prefix"`
	Width       float64 `toml:"width"`
	Height      float64 `toml:"height"`
	GridSize    float64 `toml:"grid_size"`

	ClickThreshold            int  `toml:"click_threshold"`
	MoveThreshold             int  `toml:"move_threshold"`
	PreventDefaultBlankAction bool `toml:"prevent_default_blank_action"`
	PreventContextMenu        bool `toml:"prevent_context_menu"`
	DblClickIntervalMS        int  `toml:"dblclick_interval_ms"`

	Debug bool `toml:"debug"`

	Guide GuideOptions `toml:"guide"`
	Page  PageOptions  `toml:"page"`

	// Guard is an extra predicate that can swallow events.
	Guard GuardFunc `toml:"-"`
	// Logger receives debug output. Nil discards it.
	Logger *log.Logger `toml:"-"`
	// GuideStyle styles guide lines. Nil derives a style from Guide.
	GuideStyle StyleFunc `toml:"-"`
}

// DefaultOptions returns the default configuration.
func DefaultOptions() Options {
	return Options{
		ClassPrefix:               defaultClassPrefix,
		Width:                     800,
		Height:                    600,
		GridSize:                  10,
		PreventDefaultBlankAction: true,
		PreventContextMenu:        true,
		DblClickIntervalMS:        500,
		Guide: GuideOptions{
			Enabled:     true,
			Horizontal:  true,
			Vertical:    true,
			Stroke:      "#1890ff",
			StrokeWidth: 1,
			Dashed:      true,
		},
		Page: PageOptions{
			Width:            827,
			Height:           1169,
			Scale:            1,
			MinBreakDistance: 20,
			BreakColor:       "gray",
			BreakDashed:      true,
		},
	}
}

// ParseOptions decodes TOML over DefaultOptions.
func ParseOptions(data []byte) (Options, error) {
	opts := DefaultOptions()
	if err := toml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("parse options: %w", err)
	}
	return opts, nil
}

// LoadOptions reads a TOML file and decodes it over DefaultOptions.
func LoadOptions(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultOptions(), fmt.Errorf("load options: %w", err)
	}
	opts, err := ParseOptions(data)
	if err != nil {
		return opts, fmt.Errorf("load options %s: %w", path, err)
	}
	return opts, nil
}

// Encode writes the serializable options as TOML.
func (o Options) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(o)
}

// DblClickInterval returns DblClickIntervalMS as a duration.
func (o Options) DblClickInterval() time.Duration {
	return time.Duration(o.DblClickIntervalMS) * time.Millisecond
}

func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.NewWithOptions(io.Discard, log.Options{})
}

// guideStyle returns GuideStyle, or a fixed style built from Guide.
// Grid targets are always drawn solid.
func (o Options) guideStyle() StyleFunc {
	if o.GuideStyle != nil {
		return o.GuideStyle
	}
	g := o.Guide
	return func(cell *Cell, horizontal bool) GuideStyle {
		return GuideStyle{Stroke: g.Stroke, StrokeWidth: g.StrokeWidth, Dashed: g.Dashed && cell != nil}
	}
}
