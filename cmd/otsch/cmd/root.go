package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceSchematic/pkg/config"
	"github.com/OpenTraceLab/OpenTraceSchematic/pkg/netdsl"
	"github.com/OpenTraceLab/OpenTraceSchematic/pkg/schematic"
)

var (
	// Global flags
	verbose bool
	cfgPath string

	cfg    config.Config
	logger *log.Logger
)

var rootCmd = &cobra.Command{
	Use:   "otsch",
	Short: "OpenTraceSchematic - automatic schematic layout and wire routing",
	Long: `OpenTraceSchematic (otsch) lays out components from a netlist on a
fixed grid and routes orthogonal wires between their pins, avoiding
component bodies.

Input is either a .otnet netlist file or the JSON component/net model.

Examples:
  otsch route design.otnet            # Layout, route and summarize
  otsch route design.json --json out.json
  otsch info design.otnet             # Show netlist statistics
  otsch export design.otnet -o design.kicad_sch
  otsch ui design.otnet               # Interactive viewer`,
	Version: "0.9.0",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := log.InfoLevel
		if verbose {
			level = log.DebugLevel
		}
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		})

		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "otsch.toml", "config file path")
}

// loadDesign reads a design file, dispatching on extension: .json for the
// JSON model, anything else for the .otnet DSL.
func loadDesign(path string) (*schematic.Design, error) {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return schematic.LoadJSONFile(path)
	}
	return netdsl.LoadFile(path)
}
