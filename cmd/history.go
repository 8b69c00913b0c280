package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moyu-x/desktop-organizer/app"
	"github.com/moyu-x/desktop-organizer/pkg/database"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "显示最近的整理记录",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		if !cfg.History.Enabled {
			return fmt.Errorf("运行历史已在配置中关闭")
		}

		limit, _ := cmd.Flags().GetInt("limit")

		db, err := database.NewDatabase(cfg.History.Path)
		if err != nil {
			return err
		}
		defer db.Close()

		records, err := db.Recent(limit)
		if err != nil {
			return err
		}

		if len(records) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "暂无整理记录")
			return nil
		}

		fmt.Fprintln(cmd.OutOrStdout(), app.HistoryTable(records))
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "l", 10, "显示的记录条数")

	rootCmd.AddCommand(historyCmd)
}
