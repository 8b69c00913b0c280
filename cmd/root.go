package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/moyu-x/desktop-organizer/config"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "desktop-organizer",
	Short: "按扩展名把桌面文件整理到分类目录",
	Long: `Desktop Organizer 是一个命令行工具，按扩展名把目录中的文件移动到分类子目录。

主要功能:
- 只处理目标目录的直接子文件，不递归
- 按扩展名（不区分大小写）映射到 images、videos、documents 等分类
- 未知扩展名归入 other
- 目标位置已有同名文件时跳过，不覆盖
- 预览模式只报告将要执行的操作，不修改任何文件`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.LoadFile(cfgFile)
	}
	return config.Load()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "配置文件 (默认 $HOME/.desktop-organizer/config.yaml)")
}
