package config

import (
	"os"
	"time"

	"github.com/allisson/go-env"
	"github.com/joho/godotenv"

	"git.thinkinpower.net/cardgen/data"
)

// Config carries the runtime settings, read from environment variables
// with an optional .env file in the working directory.
type Config struct {
	//http监听端口
	Port int
	//运行模式: dev, test, release
	Mode string
	//导出文件临时目录
	TempDir string
	//单次最多生成条数
	MaxCardsPerRequest int
	//导出文件保留时长
	ExportTTL time.Duration
}

// Load reads the environment. Flags in main may override individual
// fields afterwards.
func Load() Config {
	if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load(".env")
	}
	return Config{
		Port:               env.GetInt("CARDGEN_PORT", 8080),
		Mode:               env.GetString("CARDGEN_MODE", data.RunModeDev),
		TempDir:            env.GetString("CARDGEN_TEMP_DIR", "./temp"),
		MaxCardsPerRequest: env.GetInt("CARDGEN_MAX_CARDS", 1000),
		ExportTTL:          env.GetDuration("CARDGEN_EXPORT_TTL_MINUTES", 30, time.Minute),
	}
}
