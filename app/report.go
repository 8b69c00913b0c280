package app

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/moyu-x/desktop-organizer/internal"
	"github.com/moyu-x/desktop-organizer/pkg/classifier"
)

var titleCaser = cases.Title(language.English)

func newTable() table.Writer {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	return tw
}

// Table 以表格形式输出本次运行的统计
func (r *Report) Table() string {
	tw := newTable()

	title := "整理完成"
	moved, created := "已移动", "新建目录"
	if r.DryRun {
		title = "预览结果（未修改任何文件）"
		moved, created = "将移动", "将新建目录"
	}
	tw.SetTitle(title)

	tw.AppendRow(table.Row{"目标目录", r.TargetDir})
	tw.AppendSeparator()
	tw.AppendRow(table.Row{"文件总数", r.Stats.Files()})
	tw.AppendRow(table.Row{moved, r.Stats.Moved})
	tw.AppendRow(table.Row{"已跳过", r.Stats.Skipped})
	tw.AppendRow(table.Row{created, r.Stats.FoldersCreated})
	tw.AppendRow(table.Row{"错误", r.Stats.Errors})
	tw.AppendSeparator()
	tw.AppendRow(table.Row{"耗时", r.Elapsed.Round(time.Millisecond).String()})
	if r.JournalPath != "" {
		tw.AppendRow(table.Row{"移动记录", fmt.Sprintf("%s (%d 条)", r.JournalPath, r.Journaled)})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft},
		{Number: 2, Align: text.AlignRight},
	})

	return tw.Render()
}

// Text 纯文本形式的统计，用于输出不是终端的场景
func (r *Report) Text() string {
	mode := "执行"
	if r.DryRun {
		mode = "预览"
	}
	return fmt.Sprintf("目标目录: %s (%s)\n%s", r.TargetDir, mode, r.Stats.String())
}

// CategoriesTable 列出所有分类及其扩展名
func CategoriesTable() string {
	tw := newTable()
	tw.AppendHeader(table.Row{"分类", "目录", "扩展名"})

	for _, category := range classifier.Categories() {
		exts := classifier.Extensions(category)
		extList := strings.Join(exts, ", ")
		if category == internal.FallbackCategory {
			extList = "(其他所有扩展名)"
		}
		tw.AppendRow(table.Row{CategoryTitle(category), category, text.WrapSoft(extList, 60)})
	}

	return tw.Render()
}

// HistoryTable 列出运行历史
func HistoryTable(records []internal.RunRecord) string {
	tw := newTable()
	tw.AppendHeader(table.Row{"开始时间", "目录", "模式", "移动", "跳过", "新建目录", "错误", "耗时"})

	for _, rec := range records {
		mode := "执行"
		if rec.DryRun {
			mode = "预览"
		}
		tw.AppendRow(table.Row{
			rec.StartedAt.Local().Format("2006-01-02 15:04:05"),
			rec.TargetDir,
			mode,
			strconv.Itoa(rec.Stats.Moved),
			strconv.Itoa(rec.Stats.Skipped),
			strconv.Itoa(rec.Stats.FoldersCreated),
			strconv.Itoa(rec.Stats.Errors),
			rec.Duration.Round(time.Millisecond).String(),
		})
	}

	return tw.Render()
}

// CategoryTitle 分类名的显示形式，例如 "images" -> "Images"
func CategoryTitle(category string) string {
	return titleCaser.String(category)
}

// ClassifyLine 单个文件名的分类结果
func ClassifyLine(name string) string {
	category := classifier.Classify(name)
	ext := classifier.Extension(name)
	if ext == "" {
		ext = "-"
	}

	line := fmt.Sprintf("%s\t%s\t%s", name, ext, category)
	if mime := classifier.MIME(name); mime != "" {
		line += "\t" + mime
	}
	return line
}
