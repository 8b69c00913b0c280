package app

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/moyu-x/desktop-organizer/internal"
	"github.com/moyu-x/desktop-organizer/internal/logger"
	"github.com/moyu-x/desktop-organizer/internal/organizer"
	"github.com/moyu-x/desktop-organizer/pkg/database"
	"github.com/moyu-x/desktop-organizer/pkg/journal"
)

// ErrAlreadyRunning 同一目标目录上已有整理任务在执行
var ErrAlreadyRunning = errors.New("另一个整理任务正在处理该目录")

type OrganizeOptions struct {
	TargetDir   string
	DryRun      bool
	Logging     bool
	Verbose     bool
	LogLevel    string
	HistoryPath string // 为空时不记录运行历史
	Quiet       bool   // 不向控制台输出日志
	Fs          afero.Fs
}

// Report 一次运行的结果
type Report struct {
	RunID       string
	TargetDir   string
	DryRun      bool
	Stats       internal.RunStats
	StartedAt   time.Time
	Elapsed     time.Duration
	JournalPath string
	Journaled   int // 移动记录条数
}

func RunOrganize(opts *OrganizeOptions) (*Report, error) {
	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	logger.Init(opts.LogLevel, opts.Verbose)
	if opts.Quiet {
		logger.DisableConsole()
	}
	defer logger.Detach()

	report := &Report{
		RunID:     uuid.New().String(),
		TargetDir: opts.TargetDir,
		DryRun:    opts.DryRun,
		StartedAt: time.Now(),
	}

	org, err := organizer.New(fs, internal.Options{
		TargetDir: opts.TargetDir,
		DryRun:    opts.DryRun,
		Logging:   opts.Logging,
	})
	if err != nil {
		return nil, err
	}

	// 预览模式不写任何文件（包括日志、锁和移动记录）
	var j *journal.Journal
	if !opts.DryRun {
		// 目标不可用时在写入日志目录之前就返回
		if err := org.Check(); err != nil {
			return nil, fmt.Errorf("整理失败: %w", err)
		}

		unlock, err := acquireLock(fs, opts.TargetDir)
		if err != nil {
			return nil, err
		}
		defer unlock()

		if opts.Logging {
			if runLog, err := logger.OpenRunLog(fs, opts.TargetDir, report.StartedAt); err != nil {
				logger.Warn().Err(err).Msg("无法创建运行日志文件")
			} else {
				defer runLog.Close()
				logger.Attach(runLog)
				org.Log = *logger.Get()
			}
		}

		j, err = journal.Open(fs, opts.TargetDir, report.RunID)
		if err != nil {
			logger.Warn().Err(err).Msg("无法创建移动记录文件")
		} else {
			defer func() {
				if err := j.Close(); err != nil {
					logger.Warn().Err(err).Msg("关闭移动记录文件失败")
				}
			}()
			org.Recorder = j
		}
	}

	if opts.DryRun {
		logger.Info().Msg("=== 预览模式，不会实际修改文件 ===")
	}

	stats, err := org.Organize()
	report.Elapsed = time.Since(report.StartedAt)
	if err != nil {
		return nil, fmt.Errorf("整理失败: %w", err)
	}
	report.Stats = stats

	// 没有移动任何文件时记录文件会在关闭时删除
	if j != nil && j.Count() > 0 {
		report.JournalPath = j.Path()
		report.Journaled = j.Count()
	}

	if opts.HistoryPath != "" {
		saveHistory(opts.HistoryPath, report)
	}

	return report, nil
}

// acquireLock 在日志目录下获取排他锁，防止同一目录上的并发整理
func acquireLock(fs afero.Fs, targetDir string) (func(), error) {
	dir := filepath.Join(targetDir, internal.LogDirName)
	if err := fs.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("创建日志目录失败: %w", err)
	}

	// flock 只能作用于真实文件系统
	if _, ok := fs.(*afero.OsFs); !ok {
		return func() {}, nil
	}

	lock := flock.New(filepath.Join(dir, internal.LockFileName))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("获取运行锁失败: %w", err)
	}
	if !ok {
		return nil, ErrAlreadyRunning
	}

	return func() {
		if err := lock.Unlock(); err != nil {
			logger.Warn().Err(err).Msg("释放运行锁失败")
		}
	}, nil
}

// saveHistory 记录运行历史，失败只记日志，不影响本次运行结果
func saveHistory(path string, report *Report) {
	db, err := database.NewDatabase(path)
	if err != nil {
		logger.Warn().Err(err).Msg("无法打开运行历史数据库")
		return
	}
	defer db.Close()

	if err := db.Insert(report.Record()); err != nil {
		logger.Warn().Err(err).Msg("保存运行历史失败")
	}
}

// Record 转换为历史记录
func (r *Report) Record() *internal.RunRecord {
	return &internal.RunRecord{
		RunID:     r.RunID,
		TargetDir: r.TargetDir,
		DryRun:    r.DryRun,
		Stats:     r.Stats,
		StartedAt: r.StartedAt,
		Duration:  r.Elapsed,
	}
}
