package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"facpoints/aggregate"
	"facpoints/storage"
)

var listDBPath string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored faculty records",
	Long: `Print one line per stored faculty member, sorted by display name, with
quarters reported, completion status, and total points.`,
	Example: `
  # List all stored faculty
  facpoints list
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := storage.OpenSQLite(resolveDBPath(listDBPath, loadConfigLenient()))
		if err != nil {
			return err
		}
		defer store.Close()

		faculty, err := store.ListFaculty()
		if err != nil {
			return err
		}

		items := aggregate.FacultyList(faculty)
		for _, item := range items {
			status := "complete"
			if item.HasIncomplete {
				status = "incomplete"
			}
			fmt.Printf("%-40s  %-12s  %-10s  %8d\n",
				item.DisplayName,
				strings.Join(item.Quarters, ","),
				status,
				item.TotalPoints,
			)
		}
		fmt.Printf("Faculty: %d\n", len(items))
		return nil
	},
}

var batchesCmd = &cobra.Command{
	Use:   "batches",
	Short: "List recorded import batches",
	Example: `
  # List import batches, newest first
  facpoints batches
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := storage.OpenSQLite(resolveDBPath(listDBPath, loadConfigLenient()))
		if err != nil {
			return err
		}
		defer store.Close()

		batches, err := store.ListImportBatches()
		if err != nil {
			return err
		}

		for _, batch := range batches {
			fmt.Printf("%s  %-40s  read: %d, parsed: %d, skipped: %d\n",
				batch.ID, batch.SourceFile, batch.RowsRead, batch.RowsParsed, batch.RowsSkipped)
		}
		fmt.Printf("Batches: %d\n", len(batches))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(batchesCmd)

	listCmd.Flags().StringVar(&listDBPath, "db", "", "Path to local SQLite database (default from config db_path)")
	batchesCmd.Flags().StringVar(&listDBPath, "db", "", "Path to local SQLite database (default from config db_path)")
}
