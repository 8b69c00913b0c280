package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/moyu-x/desktop-organizer/internal"
)

type Config struct {
	TargetDir string `mapstructure:"target_dir"`
	DryRun    bool   `mapstructure:"dry_run"`
	Logging   struct {
		Enabled bool
		Level   string
	}
	History struct {
		Enabled bool
		Path    string
	}
}

// DesktopDir 返回当前平台的桌面目录
// Windows 使用 %USERPROFILE%\Desktop，其他平台使用 ~/Desktop
func DesktopDir() string {
	if runtime.GOOS == "windows" {
		if profile := os.Getenv("USERPROFILE"); profile != "" {
			return filepath.Join(profile, "Desktop")
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "Desktop"
	}
	return filepath.Join(home, "Desktop")
}

func Load() (*Config, error) {
	// .env 可选，不存在时忽略
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.AddConfigPath("$HOME/.desktop-organizer")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/desktop-organizer")

	v.SetEnvPrefix("ORGANIZER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	return decode(v)
}

// LoadFile 从指定文件加载配置
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	return decode(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("target_dir", DesktopDir())
	v.SetDefault("dry_run", false)
	v.SetDefault("logging.enabled", true)
	v.SetDefault("logging.level", "info")
	v.SetDefault("history.enabled", true)
	v.SetDefault("history.path", internal.DefaultHistoryPath)
}

func decode(v *viper.Viper) (*Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, err
	}

	return &c, nil
}
