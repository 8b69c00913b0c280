package journal

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/afero"

	"github.com/moyu-x/desktop-organizer/internal"
	"github.com/moyu-x/desktop-organizer/internal/logger"
)

// Move 一条移动记录
type Move struct {
	Source      string
	Destination string
}

// Journal 把每次成功的移动逐行写入日志目录下的文件，格式为 "src\tdst"
type Journal struct {
	fs       afero.Fs
	filePath string
	file     afero.File
	writer   *bufio.Writer
	mu       sync.Mutex
	count    int
}

// FileName 返回某次运行的移动记录文件名
func FileName(runID string) string {
	return fmt.Sprintf("moves_%s.txt", runID)
}

// Open 在 targetDir 的日志目录下创建移动记录文件
func Open(fs afero.Fs, targetDir, runID string) (*Journal, error) {
	dir := filepath.Join(targetDir, internal.LogDirName)
	if err := fs.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	filePath := filepath.Join(dir, FileName(runID))
	file, err := fs.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}

	return &Journal{
		fs:       fs,
		filePath: filePath,
		file:     file,
		writer:   bufio.NewWriter(file),
	}, nil
}

// Path 返回移动记录文件路径
func (j *Journal) Path() string {
	return j.filePath
}

// Record 追加一条移动记录
func (j *Journal) Record(src, dst string) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if _, err := j.writer.WriteString(src + "\t" + dst + "\n"); err != nil {
		return err
	}

	// 每100条刷新一次
	j.count++
	if j.count%100 == 0 {
		if err := j.writer.Flush(); err != nil {
			logger.Error().Err(err).Msg("刷新移动记录失败")
		}
	}

	return nil
}

// Count 返回已记录的移动数
func (j *Journal) Count() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.count
}

// Close 刷新缓冲区并关闭文件；没有任何记录时删除空文件
func (j *Journal) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if err := j.writer.Flush(); err != nil {
		return err
	}

	if err := j.file.Close(); err != nil {
		return err
	}

	if j.count == 0 {
		if err := j.fs.Remove(j.filePath); err != nil && !os.IsNotExist(err) {
			return err
		}
	}

	return nil
}

// Read 读取移动记录文件
func Read(fs afero.Fs, path string) ([]Move, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}

	var moves []Move
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		src, dst, ok := strings.Cut(line, "\t")
		if !ok {
			return nil, fmt.Errorf("无效的移动记录: %q", line)
		}
		moves = append(moves, Move{Source: src, Destination: dst})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return moves, nil
}
