package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"facpoints/aggregate"
	"facpoints/config"
	"facpoints/parser"
	"facpoints/storage"
	"facpoints/survey"
)

var (
	importInputs []string
	importFormat string
	importDBPath string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import survey exports into a local SQLite database",
	Long: `Read survey export files, parse each row into a submission, aggregate
submissions per faculty member, and persist the aggregated records in SQLite.

When --format is omitted, format is inferred from each input file extension.

Aggregation runs over the files of a single invocation: a faculty member's
stored record is replaced by what this run's files contain for them. Pass all
quarterly exports in one run to combine quarters.`,
	Example: `
  # Import multiple quarterly exports together
  facpoints import -i q1_export.csv -i q2_export.csv -i q3_export.xlsx

  # Force CSV parsing regardless of extension
  facpoints import -i export.txt --format csv

  # Import into an explicit database file
  facpoints import -i q1_export.csv --db ./facpoints.db

  # Import with custom config file
  facpoints --configFile ./custom-facpoints.yaml import -i q1_export.csv
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}

		source := scoringSourceFromConfig(cfg)

		result, err := parser.Run(importInputs, importFormat, parser.DefaultTemplates(), source)
		if err != nil {
			return err
		}

		faculty := aggregate.ByFaculty(result.Submissions)

		store, err := storage.OpenSQLite(resolveDBPath(importDBPath, cfg))
		if err != nil {
			return err
		}
		defer store.Close()

		persisted, err := store.UpsertAllFaculty(faculty)
		if err != nil {
			return err
		}

		for _, file := range result.Files {
			batch := storage.ImportBatch{
				ID:          uuid.New().String(),
				SourceFile:  file.Path,
				RowsRead:    file.RowsRead,
				RowsParsed:  file.RowsParsed,
				RowsSkipped: file.RowsSkipped,
			}
			if err := store.RecordImportBatch(batch); err != nil {
				return err
			}
		}

		summary := aggregate.Summarize(faculty)
		fmt.Printf("Import completed. Files: %d, Rows read: %d, Rows parsed: %d, Rows skipped: %d, Faculty persisted: %d\n",
			result.FilesProcessed,
			result.RowsRead,
			result.RowsParsed,
			result.RowsSkipped,
			persisted,
		)
		fmt.Printf("Faculty: %d total, %d complete, %d with incomplete submissions. Grand total points: %d\n",
			summary.TotalFaculty,
			summary.CompleteCount,
			summary.IncompleteCount,
			summary.GrandTotals[survey.TotalKey],
		)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringArrayVarP(&importInputs, "input", "i", nil, "Input file path (repeatable)")
	importCmd.Flags().StringVarP(&importFormat, "format", "f", "", "Input format: csv|excel (optional, inferred from extension when omitted)")
	importCmd.Flags().StringVar(&importDBPath, "db", "", "Path to local SQLite database (default from config db_path)")

	_ = importCmd.MarkFlagRequired("input")
}
