package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/phanxgames/arbor"
	"github.com/phanxgames/arbor/screen"
)

// cli holds state shared by all commands.
type cli struct {
	logger  *log.Logger
	verbose bool
}

func newCLI(w io.Writer) *cli {
	return &cli{
		logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           log.InfoLevel,
		}),
	}
}

func (c *cli) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "arbor",
		Short:        "Arbor is an interactive diagram canvas",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if c.verbose {
				c.logger.SetLevel(log.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.AddCommand(c.demoCommand())
	root.AddCommand(c.configCommand())
	return root
}

// loadOptions returns the options in path, or the defaults for "".
func (c *cli) loadOptions(path string) (arbor.Options, error) {
	if path == "" {
		return arbor.DefaultOptions(), nil
	}
	opts, err := arbor.LoadOptions(path)
	if err != nil {
		return opts, err
	}
	c.logger.Debug("loaded options", "path", path)
	return opts, nil
}

func (c *cli) configCommand() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective options as TOML",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.loadOptions(path)
			if err != nil {
				return err
			}
			return opts.Encode(cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&path, "config", "c", "", "options file (TOML)")
	return cmd
}

func (c *cli) demoCommand() *cobra.Command {
	var (
		path       string
		scriptPath string
		showFPS    bool
	)
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Open a window with a sample diagram",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.loadOptions(path)
			if err != nil {
				return err
			}
			g, err := c.demoGraph(opts)
			if err != nil {
				return err
			}
			cfg := screen.Config{Title: "arbor demo", ShowFPS: showFPS}
			if scriptPath != "" {
				data, err := os.ReadFile(scriptPath)
				if err != nil {
					return fmt.Errorf("read input script: %w", err)
				}
				if cfg.Script, err = screen.LoadScript(data); err != nil {
					return err
				}
			}
			return screen.Run(g, cfg)
		},
	}
	cmd.Flags().StringVarP(&path, "config", "c", "", "options file (TOML)")
	cmd.Flags().StringVar(&scriptPath, "script", "", "JSON input script to replay")
	cmd.Flags().BoolVar(&showFPS, "fps", false, "show the FPS overlay")
	return cmd
}

// demoNotifications are logged at debug level by the demo.
var demoNotifications = []string{
	"blank:click", "blank:dblclick", "blank:contextmenu", "blank:mousewheel",
	"graph:mouseenter", "graph:mouseleave",
	"node:click", "node:dblclick", "node:moved", "node:magnet:mousedown",
	"edge:connected", "edge:cancelled", "edge:label:mousedown",
}

// demoGraph builds the sample diagram: three nodes, two edges.
func (c *cli) demoGraph(opts arbor.Options) (*arbor.Graph, error) {
	opts.Logger = c.logger
	if c.verbose {
		opts.Debug = true
	}
	g, err := arbor.New(opts)
	if err != nil {
		return nil, err
	}
	if err := g.Components().Register("badge", func(cell *arbor.Cell) string { return "<" + cell.Label + ">" }); err != nil {
		return nil, err
	}

	a, err := g.AddNode("rect", arbor.Rect{X: 80, Y: 80, Width: 120, Height: 60}, "start")
	if err != nil {
		return nil, err
	}
	b, err := g.AddNode("ellipse", arbor.Rect{X: 320, Y: 200, Width: 120, Height: 70}, "work")
	if err != nil {
		return nil, err
	}
	d, err := g.AddNode("html", arbor.Rect{X: 560, Y: 80, Width: 120, Height: 60}, "done")
	if err != nil {
		return nil, err
	}
	d.HTML = "badge"
	g.RefreshCell(d)

	ab, err := g.AddEdge(a, b)
	if err != nil {
		return nil, err
	}
	ab.Label = "next"
	g.RefreshCell(ab)
	if _, err := g.AddEdge(b, d); err != nil {
		return nil, err
	}

	for _, name := range demoNotifications {
		name := name
		g.On(name, func(args arbor.EventArgs) {
			c.logger.Debug(name, "x", args.X, "y", args.Y)
		})
	}
	g.On("blank:dblclick", func(args arbor.EventArgs) {
		if _, err := g.AddNode("rect", arbor.Rect{X: args.X - 40, Y: args.Y - 20, Width: 80, Height: 40}, "new"); err != nil {
			c.logger.Error("add node", "err", err)
		}
	})
	return g, nil
}
