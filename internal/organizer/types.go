package organizer

import (
	"errors"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/moyu-x/desktop-organizer/pkg/scanner"
)

var (
	// ErrTargetUnavailable 目标目录不存在、不是目录或无法读取
	ErrTargetUnavailable = errors.New("目标目录不可用")

	// ErrCategoryPathNotDir 分类目录的路径已被非目录占用
	ErrCategoryPathNotDir = errors.New("分类路径已存在且不是目录")
)

// MoveRecorder 接收每一次成功的移动，例如写入移动日志
type MoveRecorder interface {
	Record(src, dst string) error
}

// Organizer 按扩展名整理目标目录下的文件
// 统计信息作为 Organize 的返回值，不在多次运行之间共享
type Organizer struct {
	TargetDir string              // 目标目录路径
	DryRun    bool                // 预览模式
	Fs        afero.Fs            // 文件系统接口，便于测试和抽象
	Log       zerolog.Logger      // 运行日志，关闭日志时为 Nop
	Recorder  MoveRecorder        // 可选，记录成功的移动
	walker    *scanner.FileWalker // 目录扫描器
}

// group 同一分类下的待处理文件，保持扫描顺序
type group struct {
	category string
	files    []scanner.FileEntry
}
