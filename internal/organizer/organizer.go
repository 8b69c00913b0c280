package organizer

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/moyu-x/desktop-organizer/internal"
	"github.com/moyu-x/desktop-organizer/internal/logger"
	"github.com/moyu-x/desktop-organizer/pkg/classifier"
	"github.com/moyu-x/desktop-organizer/pkg/scanner"
)

// New 创建新的整理器
// opts.Logging 为 false 时不输出任何运行日志
func New(fs afero.Fs, opts internal.Options) (*Organizer, error) {
	if opts.TargetDir == "" {
		return nil, errors.New("目标目录不能为空")
	}

	log := zerolog.Nop()
	if opts.Logging {
		log = *logger.Get()
	}

	return &Organizer{
		TargetDir: opts.TargetDir,
		DryRun:    opts.DryRun,
		Fs:        fs,
		Log:       log,
		walker:    scanner.NewFileWalker(fs),
	}, nil
}

// Organize 扫描目标目录并把文件移动到对应的分类目录
// 目标目录不可用时直接返回错误和全零统计，不处理任何文件
func (o *Organizer) Organize() (internal.RunStats, error) {
	var stats internal.RunStats

	entries, err := o.scan()
	if err != nil {
		o.Log.Error().Err(err).Str("target", o.TargetDir).Msg("目标目录不可用")
		return internal.RunStats{}, err
	}

	o.Log.Info().
		Str("target", o.TargetDir).
		Bool("dry_run", o.DryRun).
		Int("files", len(entries)).
		Msg("开始整理")

	for _, g := range groupByCategory(entries) {
		o.processGroup(g, &stats)
	}

	o.Log.Info().
		Int("moved", stats.Moved).
		Int("skipped", stats.Skipped).
		Int("folders_created", stats.FoldersCreated).
		Int("errors", stats.Errors).
		Msg("整理完成")

	return stats, nil
}

// Check 确认目标目录存在、是目录且可读，不修改文件系统
func (o *Organizer) Check() error {
	_, err := o.scan()
	return err
}

func (o *Organizer) scan() ([]scanner.FileEntry, error) {
	if err := o.checkTarget(); err != nil {
		return nil, err
	}

	o.walker.Log = o.Log
	entries, err := o.walker.List(o.TargetDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTargetUnavailable, err)
	}
	return entries, nil
}

// checkTarget 确认目标目录存在且是目录
func (o *Organizer) checkTarget() error {
	info, err := o.Fs.Stat(o.TargetDir)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTargetUnavailable, err)
	}

	if !info.IsDir() {
		return fmt.Errorf("%w: %s 不是目录", ErrTargetUnavailable, o.TargetDir)
	}

	return nil
}

// groupByCategory 按分类分组，分组按分类名排序，组内保持扫描顺序
func groupByCategory(entries []scanner.FileEntry) []group {
	index := make(map[string]int)
	var groups []group

	for _, entry := range entries {
		category := classifier.Classify(entry.Name)
		i, ok := index[category]
		if !ok {
			i = len(groups)
			index[category] = i
			groups = append(groups, group{category: category})
		}
		groups[i].files = append(groups[i].files, entry)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].category < groups[j].category
	})

	return groups
}

// processGroup 处理一个分类下的全部文件
// 分类目录不可用时，组内每个文件都记为错误
func (o *Organizer) processGroup(g group, stats *internal.RunStats) {
	folder := filepath.Join(o.TargetDir, g.category)

	if err := o.ensureCategoryDir(folder, stats); err != nil {
		stats.Errors++
		o.Log.Error().
			Err(err).
			Str("category", g.category).
			Int("files", len(g.files)).
			Msg("分类目录不可用，跳过该分类下的文件")

		for _, entry := range g.files {
			stats.Errors++
			o.Log.Error().Str("file", entry.Name).Str("category", g.category).Msg("分类目录不可用")
		}
		return
	}

	for _, entry := range g.files {
		switch o.processFile(entry, folder) {
		case internal.OutcomeMoved:
			stats.Moved++
		case internal.OutcomeSkipped:
			stats.Skipped++
		default:
			stats.Errors++
		}
	}
}
