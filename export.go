package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"go-healthwatch/fixtures"
	"go-healthwatch/processor"
)

var (
	exportRegion string
	exportStatus string
	exportOutput string

	trendsQuery processor.TrendQuery
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the filtered community reports as CSV",
	Long: `Write the community health reports matching --region and --status as CSV.
Writes to stdout unless --output is given.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

var trendsCmd = &cobra.Command{
	Use:   "trends",
	Short: "Print the disease trend charts for a region as JSON",
	Args:  cobra.NoArgs,
	RunE:  runTrends,
}

func init() {
	exportCmd.Flags().StringVar(&exportRegion, "region", processor.FilterAll, "region name contained in the report location")
	exportCmd.Flags().StringVar(&exportStatus, "status", processor.FilterAll, "report status (Submitted, Reviewed, Pending)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "file to write, default stdout")

	trendsCmd.Flags().StringVar(&trendsQuery.Region, "region", fixtures.AllRegions, "region")
	trendsCmd.Flags().StringVar(&trendsQuery.Disease, "disease", processor.FilterAll, "Cholera, Typhoid or all")
	trendsCmd.Flags().StringVar(&trendsQuery.Window, "window", processor.WindowTwelveMonths, "time window")
}

func runExport(cmd *cobra.Command, _ []string) error {
	reports := processor.FilterReports(fixtures.CommunityReports(), exportRegion, exportStatus)

	var w io.Writer = cmd.OutOrStdout()
	if exportOutput != "" {
		file, err := os.Create(exportOutput)
		if err != nil {
			return fmt.Errorf("failed to create export file %s: %w", exportOutput, err)
		}
		defer file.Close()
		w = file
	}

	if err := processor.WriteReportsCSV(w, reports); err != nil {
		return err
	}
	if exportOutput != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d reports to %s\n", len(reports), exportOutput)
	}
	return nil
}

func runTrends(cmd *cobra.Command, _ []string) error {
	bundles := fixtures.RegionBundles()
	q := trendsQuery.Normalize(bundles)

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		Query  processor.TrendQuery `json:"query"`
		Charts any                  `json:"charts"`
	}{q, processor.TransformTrends(bundles, q)})
}
