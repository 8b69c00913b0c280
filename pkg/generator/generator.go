package generator

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/moyu-x/desktop-organizer/internal/logger"
)

// Sample 一个示例文件
type Sample struct {
	Group   string
	Name    string
	Content string
}

// Samples 覆盖所有常见分类的 25 个示例文件，最后一个扩展名未知
var Samples = []Sample{
	{"image", "test-photo.jpg", "JPEG image file for testing"},
	{"image", "screenshot.png", "PNG image file for testing"},
	{"image", "animated.gif", "GIF image file for testing"},
	{"image", "logo.bmp", "BMP image file for testing"},
	{"image", "icon.svg", "<svg><circle cx='50' cy='50' r='40'/></svg>"},

	{"video", "movie.mp4", "MP4 video file for testing"},
	{"video", "clip.avi", "AVI video file for testing"},
	{"video", "presentation.mkv", "MKV video file for testing"},

	{"audio", "song.mp3", "MP3 audio file for testing"},
	{"audio", "soundtrack.wav", "WAV audio file for testing"},
	{"audio", "music.flac", "FLAC audio file for testing"},

	{"document", "resume.pdf", "PDF document file for testing"},
	{"document", "report.docx", "Word document file for testing"},
	{"document", "notes.txt", "This is a test text file.\nIt contains multiple lines.\nUsed for testing the desktop organizer."},
	{"document", "manual.rtf", "RTF document file for testing"},

	{"spreadsheet", "budget.xlsx", "Excel spreadsheet file for testing"},
	{"spreadsheet", "data.csv", "Name,Age,City\nJohn,25,New York\nJane,30,London"},

	{"presentation", "slides.pptx", "PowerPoint presentation file for testing"},
	{"presentation", "demo.odp", "OpenDocument presentation file for testing"},

	{"code", "script.py", "#!/usr/bin/env python3\nprint('Hello World!')"},
	{"code", "webpage.html", "<!DOCTYPE html>\n<html>\n<head><title>Test</title></head>\n<body><h1>Test Page</h1></body>\n</html>"},

	{"application", "installer.exe", "Executable application file for testing"},

	{"archive", "backup.zip", "ZIP archive file for testing"},
	{"archive", "compressed.rar", "RAR archive file for testing"},

	{"unknown", "mystery.xyz", "Unknown file type for testing the 'other' category"},
}

// Result 生成结果
type Result struct {
	Created []string
	Skipped []string
}

// Generate 在 dir 下写入示例文件，已存在的同名文件不覆盖
func Generate(fs afero.Fs, dir string) (*Result, error) {
	isDir, err := afero.DirExists(fs, dir)
	if err != nil {
		return nil, fmt.Errorf("检查目录失败: %w", err)
	}
	if !isDir {
		return nil, fmt.Errorf("目录不存在: %s", dir)
	}

	result := &Result{}
	for _, sample := range Samples {
		path := filepath.Join(dir, sample.Name)

		exists, err := afero.Exists(fs, path)
		if err != nil {
			return result, fmt.Errorf("检查文件失败: %w", err)
		}
		if exists {
			logger.Debug().Str("file", sample.Name).Msg("示例文件已存在，跳过")
			result.Skipped = append(result.Skipped, sample.Name)
			continue
		}

		if err := afero.WriteFile(fs, path, []byte(sample.Content), 0644); err != nil {
			return result, fmt.Errorf("写入示例文件 %s 失败: %w", sample.Name, err)
		}

		logger.Debug().Str("group", sample.Group).Str("file", sample.Name).Msg("已创建示例文件")
		result.Created = append(result.Created, sample.Name)
	}

	return result, nil
}
