package organizer

import (
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"
)

// calculateHash 计算文件的xxHash哈希值
func (o *Organizer) calculateHash(filePath string) (uint64, error) {
	file, err := o.Fs.Open(filePath)
	if err != nil {
		return 0, fmt.Errorf("打开文件失败: %w", err)
	}
	defer file.Close()

	h := xxhash.New()
	if _, err := io.Copy(h, file); err != nil {
		return 0, fmt.Errorf("计算哈希失败: %w", err)
	}

	return h.Sum64(), nil
}

// sameContent 比较两个普通文件的内容是否一致，先比大小再比哈希
func (o *Organizer) sameContent(a, b string) (bool, error) {
	infoA, err := o.Fs.Stat(a)
	if err != nil {
		return false, err
	}
	infoB, err := o.Fs.Stat(b)
	if err != nil {
		return false, err
	}

	if !infoA.Mode().IsRegular() || !infoB.Mode().IsRegular() {
		return false, fmt.Errorf("不是普通文件")
	}

	if infoA.Size() != infoB.Size() {
		return false, nil
	}

	hashA, err := o.calculateHash(a)
	if err != nil {
		return false, err
	}
	hashB, err := o.calculateHash(b)
	if err != nil {
		return false, err
	}

	return hashA == hashB, nil
}
