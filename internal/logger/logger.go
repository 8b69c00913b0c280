package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"

	"github.com/moyu-x/desktop-organizer/internal"
)

var (
	// Logger 全局日志实例，未初始化时丢弃所有输出
	Logger = zerolog.Nop()

	level   = zerolog.InfoLevel
	console io.Writer
	extra   []io.Writer
)

// ParseLevel 解析日志级别 ("debug", "info", "warn", "error")，无法识别时为 info
func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Init 初始化日志配置
// 控制台使用格式化输出，非终端时关闭颜色
func Init(levelName string, debug bool) {
	zerolog.TimeFieldFormat = time.RFC3339

	level = ParseLevel(levelName)
	if debug {
		level = zerolog.DebugLevel
	}

	fd := os.Stdout.Fd()
	console = zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: "15:04:05",
		NoColor:    !(isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)),
	}
	extra = nil

	rebuild()
}

// Attach 追加一个 JSON 格式输出（例如运行日志文件）
func Attach(w io.Writer) {
	extra = append(extra, w)
	rebuild()
}

// DisableConsole 关闭控制台输出，只保留追加的输出（TUI 运行时使用）
func DisableConsole() {
	console = nil
	rebuild()
}

// Detach 移除所有追加的输出
func Detach() {
	extra = nil
	rebuild()
}

func rebuild() {
	writers := make([]io.Writer, 0, len(extra)+1)
	if console != nil {
		writers = append(writers, console)
	}
	writers = append(writers, extra...)

	if len(writers) == 0 {
		Logger = zerolog.Nop()
		return
	}

	Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().
		Timestamp().
		Logger()

	log.Logger = Logger
}

// Get 返回全局日志实例
func Get() *zerolog.Logger {
	return &Logger
}

// Debug 输出调试日志
func Debug() *zerolog.Event {
	return Logger.Debug()
}

// Info 输出信息日志
func Info() *zerolog.Event {
	return Logger.Info()
}

// Warn 输出警告日志
func Warn() *zerolog.Event {
	return Logger.Warn()
}

// Error 输出错误日志
func Error() *zerolog.Event {
	return Logger.Error()
}

// OpenRunLog 在目标目录的日志目录下创建本次运行的日志文件
func OpenRunLog(fs afero.Fs, targetDir string, started time.Time) (afero.File, error) {
	dir := filepath.Join(targetDir, internal.LogDirName)
	if err := fs.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("创建日志目录失败: %w", err)
	}

	name := fmt.Sprintf("organizer_%s.log", started.Format("20060102_150405"))
	file, err := fs.OpenFile(filepath.Join(dir, name), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("打开日志文件失败: %w", err)
	}

	return file, nil
}
