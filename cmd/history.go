package cmd

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/luki/enviromon/internal/config"
	"github.com/luki/enviromon/internal/store"
)

var historyCount int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Dump the most recent stored samples as JSON",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		st, err := store.Open(cfg.DBPath, cfg.Retention)
		if err != nil {
			return err
		}
		defer st.Close()

		rows, err := st.Recent(historyCount)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyCount, "count", "n", 20, "number of samples to dump, newest first")
	rootCmd.AddCommand(historyCmd)
}
