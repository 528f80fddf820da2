package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/couchcryptid/feregion-service/internal/feregion"
	"github.com/spf13/cobra"
)

// maxReported caps the failures printed per phase.
const maxReported = 10

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func (p *phase) report(w io.Writer) {
	if p.passed() {
		fmt.Fprintf(w, "PASS  %s\n", p.name)
		return
	}
	fmt.Fprintf(w, "FAIL  %s (%d problems)\n", p.name, len(p.errors))
	for i, e := range p.errors {
		if i == maxReported {
			fmt.Fprintf(w, "      ... %d more\n", len(p.errors)-maxReported)
			break
		}
		fmt.Fprintf(w, "      %s\n", e)
	}
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Load the dataset and cross-check forward and reverse lookups",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		idx, err := loadIndex()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "dataset %s: %d regions", cfg.DataDir, idx.RegionCount())
		for _, q := range feregion.Quadrants {
			fmt.Fprintf(out, ", %s %d entries", q, idx.Entries(q))
		}
		fmt.Fprintln(out)

		classifier := feregion.NewClassifier(idx, logger)
		mapper := feregion.NewReverseMapper(idx, logger)

		phases := []*phase{
			validateSeismic(classifier),
			validateCoverage(classifier, mapper),
		}

		failed := false
		for _, p := range phases {
			p.report(out)
			if !p.passed() {
				failed = true
			}
		}
		if failed {
			return errors.New("dataset validation failed")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

// validateSeismic checks every geographical region has a name and a seismic
// region.
func validateSeismic(c *feregion.Classifier) *phase {
	p := &phase{name: "Phase 1: region names and seismic regions"}
	for _, region := range c.AllRegions() {
		if region.Name == "" {
			p.errorf("region %d has no name", region.Number)
		}
		seismic, err := c.SeismicRegionNumber(region.Number)
		if err != nil {
			p.errorf("region %d: %v", region.Number, err)
			continue
		}
		if seismic < 1 {
			p.errorf("region %d has seismic region %d", region.Number, seismic)
		}
	}
	return p
}

// validateCoverage looks up the centre of every one-degree cell and checks
// that the region found there claims the cell in its reconstructed extent.
func validateCoverage(c *feregion.Classifier, m *feregion.ReverseMapper) *phase {
	p := &phase{name: "Phase 2: forward lookup coverage and reverse consistency"}
	extents := make(map[int]feregion.Extent)

	for lat := -89.5; lat < 90; lat++ {
		for lon := -179.5; lon < 180; lon++ {
			coords, err := feregion.NewCoordinates(lat, lon)
			if err != nil {
				p.errorf("%v", err)
				continue
			}
			fenum, err := c.RegionNumber(coords)
			if err != nil {
				p.errorf("%s: %v", coords, err)
				continue
			}
			ext, ok := extents[fenum]
			if !ok {
				ext = m.LatitudeLongitudeMap(fenum)
				extents[fenum] = ext
			}
			if !ext.Contains(lat, lon) {
				p.errorf("%s: region %d extent does not contain the point", coords, fenum)
			}
		}
	}
	return p
}
