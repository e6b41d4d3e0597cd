package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"facpoints/aggregate"
	"facpoints/report"
	"facpoints/storage"
)

var (
	reportDBPath string
	reportOutput string
	reportKeys   []string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render Markdown reports from the local database",
}

var reportFacultyCmd = &cobra.Command{
	Use:   "faculty",
	Short: "Render per-faculty achievement summaries",
	Long: `Render one Markdown summary per faculty member into the output directory.

With --key, only the named faculty records are rendered. Keys are the
aggregation keys: the lowercased email address, or "last, first" when a
submission carried no email.`,
	Example: `
  # Render every faculty summary
  facpoints report faculty --output ./reports

  # Render a single summary
  facpoints report faculty --output ./reports --key jdoe@unmc.edu
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := storage.OpenSQLite(resolveDBPath(reportDBPath, loadConfigLenient()))
		if err != nil {
			return err
		}
		defer store.Close()

		faculty, err := store.ListFaculty()
		if err != nil {
			return err
		}

		keys := reportKeys
		if len(keys) == 0 {
			for key := range faculty {
				keys = append(keys, key)
			}
			sort.Strings(keys)
		}

		if err := os.MkdirAll(reportOutput, 0o755); err != nil {
			return fmt.Errorf("create output directory %s: %w", reportOutput, err)
		}

		now := time.Now()
		written := 0
		for _, key := range keys {
			record, ok := faculty[strings.ToLower(strings.TrimSpace(key))]
			if !ok {
				return fmt.Errorf("no faculty record for key %q", key)
			}

			path := filepath.Join(reportOutput, reportFileName(key)+".md")
			if err := os.WriteFile(path, []byte(report.FacultySummary(record, now)), 0o644); err != nil {
				return fmt.Errorf("write report %s: %w", path, err)
			}
			written++
		}

		fmt.Printf("Report completed. Faculty summaries written: %d, Directory: %s\n", written, reportOutput)
		return nil
	},
}

var reportActivityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Render activity-type reports across all faculty",
	Long: `Render Markdown reports listing every faculty member's entries for the
selected activity types. Keys use the form "category.subcategory", for
example "citizenship.committees" or "content_expert.publications_peer".

Without --key, one combined report covering every populated activity type is
written. With one --key, a single report for that type is written. With
several --key flags, one combined report covering the selection is written.`,
	Example: `
  # One combined report over everything
  facpoints report activity --output ./reports

  # All invited speaking engagements
  facpoints report activity --output ./reports --key content_expert.speaking

  # Combined report for two activity types
  facpoints report activity --output ./reports --key citizenship.committees --key education.lectures
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := storage.OpenSQLite(resolveDBPath(reportDBPath, loadConfigLenient()))
		if err != nil {
			return err
		}
		defer store.Close()

		faculty, err := store.ListFaculty()
		if err != nil {
			return err
		}

		index := aggregate.BuildActivityIndex(faculty)

		keys := reportKeys
		if len(keys) == 0 {
			for _, item := range aggregate.ActivityTypes(index) {
				keys = append(keys, item.Key)
			}
		}
		for _, key := range keys {
			if _, ok := index[key]; !ok {
				return fmt.Errorf("no entries for activity key %q", key)
			}
		}

		if err := os.MkdirAll(reportOutput, 0o755); err != nil {
			return fmt.Errorf("create output directory %s: %w", reportOutput, err)
		}

		now := time.Now()
		var path string
		if len(keys) == 1 {
			path = filepath.Join(reportOutput, reportFileName(keys[0])+".md")
			if err := os.WriteFile(path, []byte(report.ActivityReport(keys[0], index[keys[0]], now)), 0o644); err != nil {
				return fmt.Errorf("write report %s: %w", path, err)
			}
		} else {
			path = filepath.Join(reportOutput, "activities.md")
			if err := os.WriteFile(path, []byte(report.CombinedActivityReport(index, keys, now)), 0o644); err != nil {
				return fmt.Errorf("write report %s: %w", path, err)
			}
		}

		fmt.Printf("Report completed. Activity types: %d, File: %s\n", len(keys), path)
		return nil
	},
}

// reportFileName turns an aggregation or activity key into a safe file name.
func reportFileName(key string) string {
	replacer := strings.NewReplacer("@", "_at_", ".", "_", ",", "", " ", "_", "/", "_")
	return replacer.Replace(strings.ToLower(strings.TrimSpace(key)))
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.AddCommand(reportFacultyCmd)
	reportCmd.AddCommand(reportActivityCmd)

	reportCmd.PersistentFlags().StringVar(&reportDBPath, "db", "", "Path to local SQLite database (default from config db_path)")
	reportCmd.PersistentFlags().StringVarP(&reportOutput, "output", "o", "./reports", "Output directory for Markdown reports")
	reportCmd.PersistentFlags().StringArrayVarP(&reportKeys, "key", "k", nil, "Key to include (repeatable; default: all)")
}
