package main

import (
	"fmt"
	"time"

	"github.com/sandevgo/beediary/internal/config"
	"github.com/sandevgo/beediary/internal/service/ui"
	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent runs from the ledger",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		loadEnv(ctx)
		appCfg := config.NewAppConfig(ctx)

		db, ledger, err := openLedger(ctx, appCfg)
		if err != nil {
			return err
		}
		defer db.Close()

		rows, err := ledger.Recent(ctx, historyLimit)
		if err != nil {
			return err
		}

		if len(rows) == 0 {
			fmt.Println("no runs recorded yet")
			return nil
		}

		fmt.Println(ui.TitleStyle.Render("RECENT RUNS"))
		for _, row := range rows {
			line := fmt.Sprintf("%s  written=%d skipped=%d failed=%d dropped=%d pages=%d",
				row.StartedAt.Format(time.DateTime), row.Written, row.Skipped, row.Failed, row.Dropped, row.Pages)
			if row.Error != "" {
				line += "  " + ui.ErrStyle.Render(row.Error)
			}
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "number of runs to show")
	rootCmd.AddCommand(historyCmd)
}
