package cmd

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/moyu-x/desktop-organizer/pkg/generator"
)

var generateCmd = &cobra.Command{
	Use:   "generate [directory]",
	Short: "生成用于测试的示例文件",
	Long: `在目录中创建 25 个不同类型的示例文件，用于试用整理功能。
已存在的同名文件不会被覆盖。`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		dir := cfg.TargetDir
		if len(args) > 0 {
			dir = args[0]
		}

		dir = expandTarget(dir)
		result, err := generator.Generate(afero.NewOsFs(), dir)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "目标目录: %s\n", dir)
		fmt.Fprintf(out, "已创建: %d 个文件\n", len(result.Created))
		if len(result.Skipped) > 0 {
			fmt.Fprintf(out, "已存在跳过: %d 个文件\n", len(result.Skipped))
		}
		fmt.Fprintln(out, "建议先运行 organize --dry-run 预览结果")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
}
