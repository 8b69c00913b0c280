package organizer

import (
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/moyu-x/desktop-organizer/internal"
	"github.com/moyu-x/desktop-organizer/pkg/classifier"
	"github.com/moyu-x/desktop-organizer/pkg/scanner"
)

// processFile 把单个文件移动到分类目录，返回该文件的最终状态
// 目标位置已有同名项时跳过，源文件和目标文件都不改动
func (o *Organizer) processFile(entry scanner.FileEntry, folder string) internal.Outcome {
	dst := filepath.Join(folder, entry.Name)

	exists, err := o.fileExists(dst)
	if err != nil {
		o.Log.Error().Err(err).Str("file", entry.Name).Str("destination", dst).Msg("检查目标文件失败")
		return internal.OutcomeErrored
	}

	if exists {
		o.logSkip(entry.Path, dst)
		return internal.OutcomeSkipped
	}

	if o.DryRun {
		o.Log.Info().
			Str("source", entry.Path).
			Str("destination", dst).
			Str("mime", classifier.MIME(entry.Name)).
			Msg("[预览] 将移动文件")
		return internal.OutcomeMoved
	}

	if err := o.moveFile(entry.Path, dst); err != nil {
		o.Log.Error().Err(err).Str("source", entry.Path).Str("destination", dst).Msg("移动文件失败")
		return internal.OutcomeErrored
	}

	o.Log.Info().
		Str("source", entry.Path).
		Str("destination", dst).
		Str("mime", classifier.MIME(entry.Name)).
		Msg("已移动文件")

	if o.Recorder != nil {
		if err := o.Recorder.Record(entry.Path, dst); err != nil {
			o.Log.Warn().Err(err).Str("source", entry.Path).Msg("写入移动记录失败")
		}
	}

	return internal.OutcomeMoved
}

// moveFile 使用 rename 移动文件
// 失败时源文件保持原样，不做复制后删除的回退，避免出现只移动了一半的文件
func (o *Organizer) moveFile(src, dst string) error {
	return o.Fs.Rename(src, dst)
}

// logSkip 记录因同名而跳过的文件，并注明两者内容是否相同
func (o *Organizer) logSkip(src, dst string) {
	event := o.Log.Warn().Str("source", src).Str("destination", dst)

	if same, err := o.sameContent(src, dst); err == nil {
		event = event.Bool("identical", same)
	}

	event.Msg("目标位置已存在同名文件，跳过")
}

// fileExists 检查文件是否存在
func (o *Organizer) fileExists(path string) (bool, error) {
	return afero.Exists(o.Fs, path)
}
