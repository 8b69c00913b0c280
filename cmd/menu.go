package cmd

import (
	"github.com/spf13/cobra"

	"github.com/moyu-x/desktop-organizer/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "打开交互菜单",
	Long:  `以交互菜单的方式预览整理、执行整理、生成示例文件或修改目标目录。`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		historyPath := ""
		if cfg.History.Enabled {
			historyPath = cfg.History.Path
		}

		return tui.Run(&tui.Config{
			TargetDir:   expandTarget(cfg.TargetDir),
			Logging:     cfg.Logging.Enabled,
			LogLevel:    cfg.Logging.Level,
			HistoryPath: historyPath,
		})
	},
}

func init() {
	rootCmd.AddCommand(menuCmd)
}
