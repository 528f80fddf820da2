package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/couchcryptid/feregion-service/internal/feregion"
	"github.com/spf13/cobra"
	"github.com/twpayne/go-geom/encoding/geojson"
)

var extentGeoJSON bool

var extentCmd = &cobra.Command{
	Use:   "extent <region-number>",
	Short: "Print the latitude bands and longitude ranges of a region",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fenum, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("region number %q is not an integer", args[0])
		}

		idx, err := loadIndex()
		if err != nil {
			return err
		}
		region, err := feregion.NewClassifier(idx, logger).Region(fenum)
		if err != nil {
			return err
		}
		extent := feregion.NewReverseMapper(idx, logger).LatitudeLongitudeMap(fenum)

		out := cmd.OutOrStdout()
		if extentGeoJSON {
			mp, err := extent.MultiPolygon()
			if err != nil {
				return err
			}
			data, err := json.Marshal(&geojson.Feature{
				ID:         strconv.Itoa(region.Number),
				Geometry:   mp,
				Properties: map[string]any{"number": region.Number, "name": region.Name},
			})
			if err != nil {
				return fmt.Errorf("encode geojson: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		fmt.Fprintln(out, region)
		for _, band := range extent.Bands() {
			ranges := make([]string, len(extent[band]))
			for i, r := range extent[band] {
				ranges[i] = r.String()
			}
			fmt.Fprintf(out, "%+4d  %s\n", band, strings.Join(ranges, " "))
		}
		return nil
	},
}

func init() {
	extentCmd.Flags().BoolVar(&extentGeoJSON, "geojson", false, "emit a GeoJSON Feature instead of text")
	rootCmd.AddCommand(extentCmd)
}
