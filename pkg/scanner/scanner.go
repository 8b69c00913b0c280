package scanner

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/moyu-x/desktop-organizer/internal"
)

// FileEntry 扫描时目录下的一个文件
type FileEntry struct {
	Path string
	Name string
}

// FileWalker 只列出目录的直接子项，不递归
type FileWalker struct {
	Fs            afero.Fs
	IncludeHidden bool
	Log           zerolog.Logger
}

func NewFileWalker(fs afero.Fs) *FileWalker {
	return &FileWalker{
		Fs:            fs,
		IncludeHidden: false,
		Log:           zerolog.Nop(),
	}
}

// List 返回 dir 下可参与分类的文件
// 跳过子目录、隐藏文件以及日志目录；目录不可读时返回错误
// 符号链接按链接本身处理（不跟随），指向目录的链接也会作为文件返回
func (w *FileWalker) List(dir string) ([]FileEntry, error) {
	infos, err := afero.ReadDir(w.Fs, dir)
	if err != nil {
		return nil, fmt.Errorf("读取目录失败: %w", err)
	}

	entries := make([]FileEntry, 0, len(infos))
	for _, info := range infos {
		name := info.Name()

		if info.IsDir() {
			continue
		}

		if name == internal.LogDirName {
			continue
		}

		if !w.IncludeHidden && strings.HasPrefix(name, ".") {
			w.Log.Debug().Str("file", name).Msg("跳过隐藏文件")
			continue
		}

		entries = append(entries, FileEntry{
			Path: filepath.Join(dir, name),
			Name: name,
		})
	}

	return entries, nil
}
