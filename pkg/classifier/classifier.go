package classifier

import (
	"sort"
	"strings"

	"github.com/h2non/filetype"
	"github.com/h2non/filetype/types"

	"github.com/moyu-x/desktop-organizer/internal"
)

// table 扩展名（小写，不含点）到分类目录名的映射，编译期固定，运行时只读
var table = map[string]string{
	// 图片
	"jpg":  "images",
	"jpeg": "images",
	"png":  "images",
	"gif":  "images",
	"bmp":  "images",
	"webp": "images",
	"svg":  "images",
	"tif":  "images",
	"tiff": "images",
	"heic": "images",
	"ico":  "images",

	// 视频
	"mp4":  "videos",
	"avi":  "videos",
	"mkv":  "videos",
	"mov":  "videos",
	"webm": "videos",
	"wmv":  "videos",
	"flv":  "videos",
	"mpg":  "videos",
	"m4v":  "videos",

	// 音频
	"mp3":  "audio",
	"wav":  "audio",
	"flac": "audio",
	"aac":  "audio",
	"ogg":  "audio",
	"m4a":  "audio",
	"wma":  "audio",

	// 文档
	"docx": "documents",
	"doc":  "documents",
	"pdf":  "documents",
	"txt":  "documents",
	"rtf":  "documents",
	"odt":  "documents",
	"pptx": "documents",
	"ppt":  "documents",
	"odp":  "documents",

	// 表格
	"xlsx": "excel",
	"xls":  "excel",
	"ods":  "excel",

	// 应用程序
	"exe": "apps",

	// 代码及数据
	"py":    "codes",
	"c":     "codes",
	"cpp":   "codes",
	"java":  "codes",
	"json":  "codes",
	"html":  "codes",
	"css":   "codes",
	"js":    "codes",
	"php":   "codes",
	"sql":   "codes",
	"xml":   "codes",
	"md":    "codes",
	"csv":   "codes",
	"db":    "codes",
	"dll":   "codes",
	"apk":   "codes",
	"bat":   "codes",
	"bin":   "codes",
	"class": "codes",
	"cmd":   "codes",
	"com":   "codes",
	"dat":   "codes",
	"dmg":   "codes",
	"elf":   "codes",
	"h":     "codes",
	"jar":   "codes",
	"msi":   "codes",
	"out":   "codes",
	"ahk":   "codes",
	"go":    "codes",

	// 压缩包
	"zip": "compressed",
	"rar": "compressed",
	"7z":  "compressed",
	"tar": "compressed",
	"gz":  "compressed",
	"xz":  "compressed",
	"bz2": "compressed",
	"iso": "compressed",
	"pkg": "compressed",
	"tgz": "compressed",
	"z":   "compressed",

	// 快捷方式
	"lnk": "shortcuts",
	"url": "shortcuts",

	// 字体
	"ttf":   "fonts",
	"otf":   "fonts",
	"woff":  "fonts",
	"woff2": "fonts",

	// 电子书
	"epub": "ebooks",
	"mobi": "ebooks",
	"azw3": "ebooks",
}

// Extension 返回文件名最后一个点之后的部分（小写）
// 没有点或点后为空时返回空字符串
func Extension(name string) string {
	idx := strings.LastIndexByte(name, '.')
	if idx < 0 || idx == len(name)-1 {
		return ""
	}
	return strings.ToLower(name[idx+1:])
}

// Classify 根据扩展名返回分类，未知扩展名归入兜底分类
func Classify(name string) string {
	if category, ok := Lookup(Extension(name)); ok {
		return category
	}
	return internal.FallbackCategory
}

// Lookup 按规范化后的扩展名查表
func Lookup(ext string) (string, bool) {
	category, ok := table[strings.ToLower(strings.TrimPrefix(ext, "."))]
	return category, ok
}

// Categories 返回所有分类名（含兜底分类），按字母排序
func Categories() []string {
	seen := map[string]bool{internal.FallbackCategory: true}
	for _, category := range table {
		seen[category] = true
	}

	categories := make([]string, 0, len(seen))
	for category := range seen {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	return categories
}

// Extensions 返回映射到指定分类的扩展名，按字母排序
func Extensions(category string) []string {
	var exts []string
	for ext, c := range table {
		if c == category {
			exts = append(exts, ext)
		}
	}
	sort.Strings(exts)
	return exts
}

// MIME 返回扩展名在 filetype 注册表中的 MIME 类型，仅按扩展名查询，不读取文件内容
func MIME(name string) string {
	ext := Extension(name)
	if ext == "" {
		return ""
	}

	kind := filetype.GetType(ext)
	if kind == types.Unknown {
		return ""
	}

	return kind.MIME.Value
}
