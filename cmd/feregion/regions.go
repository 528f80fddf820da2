package main

import (
	"fmt"

	"github.com/couchcryptid/feregion-service/internal/feregion"
	"github.com/spf13/cobra"
)

var regionsCmd = &cobra.Command{
	Use:   "regions",
	Short: "List every geographical region with its seismic region",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		idx, err := loadIndex()
		if err != nil {
			return err
		}
		classifier := feregion.NewClassifier(idx, logger)

		out := cmd.OutOrStdout()
		for _, region := range classifier.AllRegions() {
			seismic, err := classifier.SeismicRegionNumber(region.Number)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%4d %3d  %s\n", region.Number, seismic, region.Name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(regionsCmd)
}
