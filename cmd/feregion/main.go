// Command feregion resolves longitude/latitude pairs to Flinn-Engdahl
// regions and serves the same lookups over HTTP.
//
// Usage:
//
//	feregion -122.5 36.2
//	feregion 122.5W 36.2N
//	feregion regions
//	feregion extent 46 --geojson
//	feregion serve
//
// The F-E tables are read at startup from FEREGION_DATA_DIR (default
// data/fe_1995), which must hold the USGS fe_1995 ASCII files.
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/couchcryptid/feregion-service/internal/config"
	"github.com/couchcryptid/feregion-service/internal/feregion"
	"github.com/couchcryptid/feregion-service/internal/observability"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const usage = `   Usage:  feregion  <lon> <lat>
   As In:  feregion  -122.5  36.2
   As In:  feregion   122.5W 36.2N
`

var errUsage = errors.New("usage")

var (
	cfg    *config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "feregion <lon> <lat>",
	Short: "Flinn-Engdahl seismic and geographical region lookup",
	Long: "Resolves a longitude/latitude pair to its Flinn-Engdahl (1995) geographical region.\n" +
		"Coordinates are signed decimals or magnitudes with a hemisphere letter.",
	// Negative longitudes look like flags.
	DisableFlagParsing: true,
	Args:               cobra.ArbitraryArgs,
	SilenceUsage:       true,
	SilenceErrors:      true,
	CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load(".env")

		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c
		logger = observability.NewLogger(cfg)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 && (args[0] == "-h" || args[0] == "--help") {
			return cmd.Help()
		}
		if len(args) != 2 {
			return errUsage
		}
		coords, err := feregion.ParseCoordinates(args[0], args[1])
		if err != nil {
			return err
		}
		idx, err := loadIndex()
		if err != nil {
			return err
		}
		region, err := feregion.NewClassifier(idx, logger).Locate(coords)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), region.Name)
		return nil
	},
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command tree and maps failures to an exit status.
func run(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprint(stderr, usage)
		} else {
			fmt.Fprintln(stderr, err)
		}
		return 1
	}
	return 0
}

// datasetHint is appended when the dataset files are missing. The tables are
// not bundled with the binary.
const datasetHint = "set FEREGION_DATA_DIR to a directory holding the USGS fe_1995 files " +
	"names.asc, quadsidx.asc, nesect.asc, nwsect.asc, sesect.asc, swsect.asc and seisrdef.asc, " +
	"published at ftp://hazards.cr.usgs.gov/feregion/fe_1995/"

func loadIndex() (*feregion.Index, error) {
	idx, err := feregion.LoadDir(cfg.DataDir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load dataset from %s: %w; %s", cfg.DataDir, err, datasetHint)
	}
	if err != nil {
		return nil, fmt.Errorf("load dataset from %s: %w", cfg.DataDir, err)
	}
	logger.Debug("dataset loaded", "dir", cfg.DataDir, "regions", idx.RegionCount())
	return idx, nil
}
