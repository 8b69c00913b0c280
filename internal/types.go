package internal

import (
	"bytes"
	"fmt"
	"time"
)

// 单次运行的配置，运行期间不可变
type Options struct {
	TargetDir string // 目标目录
	DryRun    bool   // 预览模式，不修改文件系统
	Logging   bool   // 是否输出运行日志
}

// 单次运行的统计，每次运行都从零开始
type RunStats struct {
	Moved          int // 已移动（预览模式下为将要移动）
	Skipped        int // 目标已存在同名文件而跳过
	FoldersCreated int // 新建的分类目录（预览模式下为将要新建）
	Errors         int // 文件系统错误
}

// Files 返回已处理的文件数
func (s RunStats) Files() int {
	return s.Moved + s.Skipped + s.Errors
}

func (s RunStats) String() string {
	var buf bytes.Buffer

	buf.WriteString("========== 整理统计 ==========\n")
	buf.WriteString(fmt.Sprintf("已移动: %d\n", s.Moved))
	buf.WriteString(fmt.Sprintf("已跳过: %d\n", s.Skipped))
	buf.WriteString(fmt.Sprintf("新建目录: %d\n", s.FoldersCreated))
	buf.WriteString(fmt.Sprintf("错误: %d\n", s.Errors))
	buf.WriteString("============================")

	return buf.String()
}

// 单个文件的最终状态
type Outcome string

const (
	OutcomeMoved   Outcome = "moved"
	OutcomeSkipped Outcome = "skipped"
	OutcomeErrored Outcome = "errored"
)

// 一次运行的历史记录
type RunRecord struct {
	RunID     string
	TargetDir string
	DryRun    bool
	Stats     RunStats
	StartedAt time.Time
	Duration  time.Duration
}
