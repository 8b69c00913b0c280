package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/moyu-x/desktop-organizer/app"
	"github.com/moyu-x/desktop-organizer/config"
	"github.com/moyu-x/desktop-organizer/pkg/database"
)

var organizeCmd = &cobra.Command{
	Use:   "organize [directory]",
	Short: "整理目录中的文件",
	Long: `读取目录中的直接子文件，按扩展名移动到对应的分类目录。
未指定目录时使用配置中的 target_dir，默认为桌面。
使用 --dry-run 先预览将要执行的操作。`,
	Args: cobra.MaximumNArgs(1),
	RunE: runOrganize,
}

func runOrganize(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	opts := organizeOptions(cmd, cfg, args)

	report, err := app.RunOrganize(opts)
	if err != nil {
		return err
	}

	printReport(cmd.OutOrStdout(), report)

	return nil
}

// printReport 终端上输出表格，管道或重定向时输出纯文本
func printReport(out io.Writer, report *app.Report) {
	if f, ok := out.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		fmt.Fprintln(out, report.Table())
		return
	}
	fmt.Fprintln(out, report.Text())
}

// expandTarget 展开配置或参数中以 ~ 开头的目录
func expandTarget(dir string) string {
	if expanded, err := database.ExpandPath(dir); err == nil {
		return expanded
	}
	return dir
}

// organizeOptions 合并配置文件与命令行参数，命令行优先
func organizeOptions(cmd *cobra.Command, cfg *config.Config, args []string) *app.OrganizeOptions {
	targetDir := cfg.TargetDir
	if len(args) > 0 {
		targetDir = args[0]
	}

	dryRun := cfg.DryRun
	if cmd.Flags().Changed("dry-run") {
		dryRun, _ = cmd.Flags().GetBool("dry-run")
	}

	logging := cfg.Logging.Enabled
	if noLog, _ := cmd.Flags().GetBool("no-log"); noLog {
		logging = false
	}

	verbose, _ := cmd.Flags().GetBool("verbose")

	historyPath := ""
	if cfg.History.Enabled {
		historyPath = cfg.History.Path
	}

	return &app.OrganizeOptions{
		TargetDir:   expandTarget(targetDir),
		DryRun:      dryRun,
		Logging:     logging,
		Verbose:     verbose,
		LogLevel:    cfg.Logging.Level,
		HistoryPath: historyPath,
	}
}

func addOrganizeFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("dry-run", "n", false, "预览模式，不实际移动文件")
	cmd.Flags().Bool("no-log", false, "不输出运行日志")
	cmd.Flags().BoolP("verbose", "v", false, "显示详细日志")
}

func init() {
	addOrganizeFlags(organizeCmd)

	rootCmd.AddCommand(organizeCmd)
}
