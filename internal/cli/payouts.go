package cli

import (
	"encoding/json"
	"os"

	"github.com/Bhishaj9/redbull-backend/internal/payout"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(payoutsCmd)
	payoutsCmd.AddCommand(payoutsRunCmd)
}

var payoutsCmd = &cobra.Command{
	Use:   "payouts",
	Short: "Daily payout tasks",
}

var payoutsRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Credit every due plan instance once and print the report",
	Long: `Runs the same batch as the daily scheduler. Instances already credited
today in PAYOUT_TIMEZONE are skipped, so repeating the command is harmless.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, database, err := bootstrap()
		if err != nil {
			return err
		}
		defer database.Close()

		engine := payout.NewEngine(payout.NewRepository(database), cfg.PayoutLocation(), nil)
		report, err := engine.Run(cmd.Context())
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	},
}
