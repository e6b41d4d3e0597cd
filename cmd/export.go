package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"facpoints/report"
	"facpoints/storage"
)

var (
	exportFormat string
	exportOutput string
	exportDBPath string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the faculty points summary to CSV/Excel",
	Long: `Export one row per faculty member with category and total points, sorted
alphabetically by surname.

Output format can be selected explicitly via --format or inferred from the
--output extension.`,
	Example: `
  # Export the points summary to CSV
  facpoints export --output ./points.csv

  # Export the points summary to Excel
  facpoints export --output ./points.xlsx

  # Force Excel format independent of extension
  facpoints export --format excel --output ./points.out
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format := exportFormat
		if strings.TrimSpace(format) == "" {
			format = detectExportFormat(exportOutput)
		}

		store, err := storage.OpenSQLite(resolveDBPath(exportDBPath, loadConfigLenient()))
		if err != nil {
			return err
		}
		defer store.Close()

		faculty, err := store.ListFaculty()
		if err != nil {
			return err
		}

		rows := report.PointsRows(faculty)

		writer, err := report.WriterForFormat(format)
		if err != nil {
			return err
		}
		if err := writer.Write(exportOutput, rows); err != nil {
			return err
		}

		fmt.Printf("Export completed. Rows: %d, Format: %s, File: %s\n", len(rows), format, exportOutput)
		return nil
	},
}

func detectExportFormat(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch ext {
	case "csv":
		return "csv"
	case "xlsx", "xlsm", "xls":
		return "excel"
	default:
		return "csv"
	}
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "Output format: csv|excel (optional, inferred from output extension)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file path")
	exportCmd.Flags().StringVar(&exportDBPath, "db", "", "Path to local SQLite database (default from config db_path)")

	_ = exportCmd.MarkFlagRequired("output")
}
