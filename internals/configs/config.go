package configs

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

const dbFileName = "monges.db"

type Config struct {
	AppEnv      string
	DBPath      string
	Port        string
	PageSize    int
	StatsTopN   int
	CorsOrigins []string
	LogSQL      bool
}

// Packaged: build rilis, data di folder user-data.
func (c Config) Packaged() bool { return c.AppEnv == "production" }

// =======================
// ENV LOADER
// =======================
func LoadEnv() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
	} else {
		log.Println("✅ .env file berhasil dimuat!")
	}
	return FromEnv()
}

// FromEnv membaca konfigurasi dari environment (tanpa .env).
func FromEnv() Config {
	origins := GetEnv("CORS_ORIGINS", "http://localhost:5173,http://127.0.0.1:5173")
	cfg := Config{
		AppEnv:      strings.ToLower(GetEnv("APP_ENV", "development")),
		Port:        GetEnv("PORT", "3000"),
		PageSize:    atoiPositive(GetEnv("PAGE_SIZE"), 10),
		StatsTopN:   atoiPositive(GetEnv("STATS_TOP_N"), 8),
		LogSQL:      GetEnv("LOG_SQL") == "true",
		CorsOrigins: splitList(origins),
	}
	cfg.DBPath = ResolveDBPath(cfg)
	return cfg
}

// ResolveDBPath: MONGES_DB_PATH > folder user-data (packaged) > ./monges.db (dev)
func ResolveDBPath(cfg Config) string {
	if p := GetEnv("MONGES_DB_PATH"); p != "" {
		return p
	}
	if !cfg.Packaged() {
		return dbFileName
	}
	dir := GetEnv("MONGES_DATA_DIR")
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			log.Printf("⚠️ user config dir: %v, pakai folder kerja", err)
			return dbFileName
		}
		dir = filepath.Join(base, "monges")
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.Printf("❌ gagal membuat %s: %v", dir, err)
	}
	return filepath.Join(dir, dbFileName)
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if (!exists || value == "") && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func atoiPositive(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// =======================
// GORM LOGGER CUSTOM
// =======================
type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormLogger.LogLevel
}

func NewGormLogger(verbose bool) gormLogger.Interface {
	level := gormLogger.Warn
	if verbose {
		level = gormLogger.Info
	}
	return &GormLogger{
		SlowThreshold: 200 * time.Millisecond,
		LogLevel:      level,
	}
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	l.LogLevel = level
	return l
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Info {
		log.Printf("[INFO] "+msg, data...)
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Warn {
		log.Printf("[WARN] "+msg, data...)
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Error {
		log.Printf("[ERROR] "+msg, data...)
	}
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.LogLevel <= gormLogger.Silent {
		return
	}
	elapsed := time.Since(begin)
	sql, rows := fc()
	file := utils.FileWithLineNum()

	switch {
	case err != nil && l.LogLevel >= gormLogger.Error:
		log.Printf("[ERROR] %s | %v | %s | %d rows | %s", file, err, elapsed, rows, sql)
	case elapsed > l.SlowThreshold && l.LogLevel >= gormLogger.Warn:
		log.Printf("[SLOW SQL] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	case l.LogLevel >= gormLogger.Info:
		log.Printf("[QUERY] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	}
}
