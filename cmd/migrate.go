package cmd

import (
	"fmt"
	"strings"

	"github.com/killallgit/podcast-api/internal/models"
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		Long: `Manage the database schema of the Podcast API.

The schema is derived from the podcast, episode and user models.

Available subcommands:
  up      - Create or update all tables
  down    - Drop all tables
  status  - Show which tables exist`,
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Create or update all tables",
		Long: `Apply the current schema to the database.

Missing tables, columns and indexes are created. Existing data is kept.`,
		RunE: runMigrateUp,
	}

	downCmd := &cobra.Command{
		Use:   "down",
		Short: "Drop all tables",
		Long: `Drop every table managed by the API.

All podcasts, episodes and users are deleted. You will be asked to
confirm unless --yes is given.`,
		RunE: runMigrateDown,
	}
	downCmd.Flags().BoolP("yes", "y", false, "skip the confirmation prompt")

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		Long: `Display the current status of the database schema.

Each managed table is listed with whether it exists.`,
		RunE: runMigrateStatus,
	}

	migrateCmd.PersistentFlags().Bool("dry-run", false, "show what would be done without making changes")
	migrateCmd.AddCommand(upCmd, downCmd, statusCmd)
	return migrateCmd
}

func tableNames() []string {
	names := make([]string, 0, len(models.All()))
	for _, m := range models.All() {
		names = append(names, strings.TrimPrefix(fmt.Sprintf("%T", m), "*models."))
	}
	return names
}

func runMigrateUp(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	out := cmd.OutOrStdout()

	if dryRun {
		fmt.Fprintln(out, "Dry run mode - no changes will be made")
		fmt.Fprintf(out, "Would migrate: %s\n", strings.Join(tableNames(), ", "))
		return nil
	}

	if err := loadConfig(); err != nil {
		return err
	}
	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.AutoMigrate(models.All()...); err != nil {
		return err
	}
	fmt.Fprintln(out, "Migrations applied")
	return nil
}

func runMigrateDown(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	yes, _ := cmd.Flags().GetBool("yes")
	out := cmd.OutOrStdout()

	if dryRun {
		fmt.Fprintln(out, "Dry run mode - no changes will be made")
		fmt.Fprintf(out, "Would drop: %s\n", strings.Join(tableNames(), ", "))
		return nil
	}

	// Confirmation prompt for destructive action
	if !yes {
		fmt.Fprint(out, "WARNING: This will drop all tables. Continue? (y/N): ")
		var response string
		_, _ = fmt.Fscanln(cmd.InOrStdin(), &response)
		if response != "y" && response != "Y" {
			fmt.Fprintln(out, "Migration rollback cancelled")
			return nil
		}
	}

	if err := loadConfig(); err != nil {
		return err
	}
	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.DropTables(models.All()...); err != nil {
		return err
	}
	fmt.Fprintln(out, "Tables dropped")
	return nil
}

func runMigrateStatus(cmd *cobra.Command, args []string) error {
	if err := loadConfig(); err != nil {
		return err
	}
	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	statuses, err := db.Status(models.All()...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Database Migration Status")
	fmt.Fprintln(out, strings.Repeat("=", 50))
	for _, s := range statuses {
		state := "missing"
		if s.Exists {
			state = "present"
		}
		fmt.Fprintf(out, "  %-20s %s\n", s.Table, state)
	}
	return nil
}
