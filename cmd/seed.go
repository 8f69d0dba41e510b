package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mathevilla/server/internal/curriculum"
	"github.com/mathevilla/server/internal/store"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the base task bank and bootstrap admin into the database",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		seeder := curriculum.NewSeeder(curriculum.Default(), st.Tasks(), st.Users(), logger)

		result, err := seeder.SeedBase(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		if result.TaskCount > 0 {
			fmt.Printf("Aufgaben: %d\n", result.TaskCount)
		}
		return nil
	},
}
