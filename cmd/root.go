package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mathevilla/server/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "mathevilla",
	Short: "Gamified math practice backend",
	Long:  "MatheVilla — backend API for gamified math practice (Klasse 5-10) with XP, badges, challenges, and AI-assisted recommendations.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MATHEVILLA_DB env var)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then MATHEVILLA_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
