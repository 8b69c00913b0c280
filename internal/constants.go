package internal

const (
	// 无法识别扩展名时使用的兜底分类
	FallbackCategory = "other"

	// 工具自身的日志目录，位于目标目录下，永远不参与分类
	LogDirName = "organizer_logs"

	// 配置目录
	DefaultConfigDir = "~/.desktop-organizer"

	// 运行历史数据库默认路径
	DefaultHistoryPath = "~/.desktop-organizer/history.db"

	// 运行锁文件名，位于日志目录下
	LockFileName = ".organizer.lock"
)
