package database

import (
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/moyu-x/desktop-organizer/internal"
	"github.com/moyu-x/desktop-organizer/internal/logger"
)

type RunRecord struct {
	ID             int64     `gorm:"primaryKey"`
	RunID          string    `gorm:"uniqueIndex;not null"`
	TargetDir      string    `gorm:"index;not null"`
	DryRun         bool      `gorm:"not null"`
	Moved          int       `gorm:"not null"`
	Skipped        int       `gorm:"not null"`
	FoldersCreated int       `gorm:"not null"`
	Errors         int       `gorm:"not null"`
	StartedAt      time.Time `gorm:"index;not null"`
	DurationMs     int64     `gorm:"not null"`
}

func (RunRecord) TableName() string {
	return "runs"
}

type Database struct {
	db *gorm.DB
}

func NewDatabase(dbPath string) (*Database, error) {
	expandedPath, err := ExpandPath(dbPath)
	if err != nil {
		logger.Error().Err(err).Msg("扩展数据库路径失败")
		return nil, err
	}

	logger.Debug().Msgf("初始化历史数据库，路径: %s", expandedPath)

	if err := os.MkdirAll(filepath.Dir(expandedPath), 0755); err != nil {
		logger.Error().Err(err).Msgf("创建数据库目录失败: %s", filepath.Dir(expandedPath))
		return nil, err
	}

	db, err := gorm.Open(sqlite.Open(expandedPath), &gorm.Config{
		Logger: gormlogger.Discard,
	})
	if err != nil {
		logger.Error().Err(err).Msg("打开数据库连接失败")
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Error().Err(err).Msg("获取数据库连接失败")
		return nil, err
	}

	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	if err := createSchema(db); err != nil {
		logger.Error().Err(err).Msg("创建数据库表失败")
		return nil, err
	}

	return &Database{db: db}, nil
}

// ExpandPath 展开以 ~/ 开头的路径
func ExpandPath(path string) (string, error) {
	if len(path) >= 2 && path[0] == '~' && (path[1] == '/' || path[1] == '\\') {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, path[2:]), nil
	}
	return path, nil
}

func createSchema(db *gorm.DB) error {
	return db.AutoMigrate(&RunRecord{})
}

// Insert 保存一次运行的统计
func (d *Database) Insert(record *internal.RunRecord) error {
	gormRecord := &RunRecord{
		RunID:          record.RunID,
		TargetDir:      record.TargetDir,
		DryRun:         record.DryRun,
		Moved:          record.Stats.Moved,
		Skipped:        record.Stats.Skipped,
		FoldersCreated: record.Stats.FoldersCreated,
		Errors:         record.Stats.Errors,
		StartedAt:      record.StartedAt,
		DurationMs:     record.Duration.Milliseconds(),
	}

	if err := d.db.Create(gormRecord).Error; err != nil {
		logger.Error().Err(err).Msgf("插入运行记录失败: %s", record.RunID)
		return err
	}

	logger.Debug().Msgf("插入运行记录成功: %s", record.RunID)
	return nil
}

// Recent 按开始时间倒序返回最近的运行记录
func (d *Database) Recent(limit int) ([]internal.RunRecord, error) {
	var rows []RunRecord
	if err := d.db.Order("started_at DESC").Order("id DESC").Limit(limit).Find(&rows).Error; err != nil {
		logger.Error().Err(err).Msg("查询运行记录失败")
		return nil, err
	}

	records := make([]internal.RunRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, internal.RunRecord{
			RunID:     row.RunID,
			TargetDir: row.TargetDir,
			DryRun:    row.DryRun,
			Stats: internal.RunStats{
				Moved:          row.Moved,
				Skipped:        row.Skipped,
				FoldersCreated: row.FoldersCreated,
				Errors:         row.Errors,
			},
			StartedAt: row.StartedAt,
			Duration:  time.Duration(row.DurationMs) * time.Millisecond,
		})
	}

	return records, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		logger.Error().Err(err).Msg("获取数据库连接失败")
		return err
	}
	return sqlDB.Close()
}
