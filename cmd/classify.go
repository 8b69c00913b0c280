package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moyu-x/desktop-organizer/app"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <names...>",
	Short: "显示文件名对应的分类",
	Long: `按扩展名显示文件将被归入的分类，不访问文件系统。
输出列: 文件名、扩展名、分类、MIME 类型（已知时）。`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range args {
			fmt.Fprintln(cmd.OutOrStdout(), app.ClassifyLine(name))
		}
	},
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "列出所有分类及其扩展名",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), app.CategoriesTable())
	},
}

func init() {
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(categoriesCmd)
}
