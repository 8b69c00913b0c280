package organizer

import (
	"fmt"
	"os"

	"github.com/moyu-x/desktop-organizer/internal"
)

// ensureCategoryDir 确保分类目录存在
// 已存在的目录不计数；预览模式下只记录“将要创建”
func (o *Organizer) ensureCategoryDir(dir string, stats *internal.RunStats) error {
	info, err := o.Fs.Stat(dir)
	switch {
	case err == nil && info.IsDir():
		return nil
	case err == nil:
		return fmt.Errorf("%w: %s", ErrCategoryPathNotDir, dir)
	case !os.IsNotExist(err):
		return fmt.Errorf("检查分类目录失败: %w", err)
	}

	if o.DryRun {
		stats.FoldersCreated++
		o.Log.Info().Str("path", dir).Msg("[预览] 将创建分类目录")
		return nil
	}

	if err := o.Fs.Mkdir(dir, 0755); err != nil {
		return fmt.Errorf("创建分类目录失败: %w", err)
	}

	stats.FoldersCreated++
	o.Log.Info().Str("path", dir).Msg("已创建分类目录")
	return nil
}
