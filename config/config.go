package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath 기본 설정 파일 경로
const DefaultConfigPath = "config.yaml"

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Addr string `yaml:"-"` // 설정 파일이 아닌 로드 후 계산
	} `yaml:"server"`
	Log struct {
		Level    string `yaml:"level"`
		Format   string `yaml:"format"`
		Output   string `yaml:"output"`
		FilePath string `yaml:"file_path"`
	} `yaml:"log"`

	DB struct {
		Host            string `yaml:"host"`
		Port            int    `yaml:"port"`
		Username        string `yaml:"username"`
		Password        string `yaml:"password"`
		Database        string `yaml:"database"`
		Charset         string `yaml:"charset"`
		ParseTime       bool   `yaml:"parse_time"`
		DSN             string `yaml:"-"`                 // 로드 후 계산
		MaxOpenConns    int    `yaml:"max_open_conns"`    // 최대 연결 수
		MaxIdleConns    int    `yaml:"max_idle_conns"`    // 최대 유휴 연결 수
		ConnMaxLifetime int    `yaml:"conn_max_lifetime"` // 연결 최대 수명 (분)
	} `yaml:"database"`
	Corpus struct {
		Source string `yaml:"source"` // file | mysql
		Path   string `yaml:"path"`   // source=file 일 때 정규화된 정책 JSON 경로
		Table  string `yaml:"table"`  // source=mysql 일 때 정책 테이블명
	} `yaml:"corpus"`
	Embedding struct {
		Provider    string `yaml:"provider"` // none | openai | ollama
		Model       string `yaml:"model"`
		APIKey      string `yaml:"api_key"`
		Host        string `yaml:"host"`
		BatchSize   int    `yaml:"batch_size"`  // 로드 시 배치당 텍스트 수
		Concurrency int    `yaml:"concurrency"` // 동시 배치 요청 수
		TimeoutSec  int    `yaml:"timeout_sec"` // 로드 시 전체 임베딩 타임아웃 (초)
	} `yaml:"embedding"`
	Gemini struct {
		APIKey     string `yaml:"api_key"`
		Model      string `yaml:"model"`
		TimeoutSec int    `yaml:"timeout_sec"` // 요약 요청 타임아웃 (초)
	} `yaml:"gemini"`
	Recommend struct {
		MaxCacheSize int   `yaml:"max_cache_size"` // 추천 캐시 최대 항목 수
		DefaultTopK  int   `yaml:"default_top_k"`
		MaxTopK      int   `yaml:"max_top_k"`
		Seed         int64 `yaml:"seed"` // 0 이면 시간 기반 시드
	} `yaml:"recommend"`
	Summary struct {
		MaxCacheSize    int `yaml:"max_cache_size"`
		RateLimitPerMin int `yaml:"rate_limit_per_min"` // IP당 분당 요약 요청 수
	} `yaml:"summary"`
	Timeouts struct {
		RequestSec  int `yaml:"request_sec"`  // 요청 읽기 타임아웃 (초)
		ResponseSec int `yaml:"response_sec"` // 응답 쓰기 타임아웃 (초)
		IdleSec     int `yaml:"idle_sec"`     // 유휴 타임아웃 (초)
	} `yaml:"timeouts"`
	Debug struct {
		Enabled        bool `yaml:"enabled"`          // debug 모드 여부
		CacheResetFreq int  `yaml:"cache_reset_freq"` // debug 모드 캐시 초기화 주기 (초)
	} `yaml:"debug"`
	Scheduler struct {
		CheckIntervalSec int `yaml:"check_interval_sec"` // 스케줄러 점검 주기 (초)
		CacheResetHour   int `yaml:"cache_reset_hour"`   // 매일 캐시 초기화 시각 (0-23)
		CacheResetMinute int `yaml:"cache_reset_minute"` // 매일 캐시 초기화 분 (0-59)
	} `yaml:"scheduler"`
}

// Load .env 와 config.yaml 을 읽어 설정을 만든다. 파일이 없거나 잘못되면 환경 변수만 사용한다.
func Load() *Config {
	// .env 파일이 없으면 시스템 환경 변수를 그대로 사용
	_ = godotenv.Load()

	cfg, err := LoadFile(DefaultConfigPath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Error loading %s: %v, falling back to environment variables", DefaultConfigPath, err)
		}
		return loadFromEnv()
	}
	log.Printf("Loading configuration from %s", DefaultConfigPath)
	return cfg
}

// LoadFile 지정한 YAML 파일에서 설정을 읽고 환경 변수 덮어쓰기와 기본값을 적용한다
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	applyEnvOverrides(&cfg)
	applyDefaults(&cfg)
	return &cfg, nil
}

// Default 파일과 환경 변수 없이 기본값만 채운 설정
func Default() *Config {
	var cfg Config
	applyDefaults(&cfg)
	return &cfg
}

func loadFromEnv() *Config {
	var cfg Config

	if port := os.Getenv("SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Server.Port = p
		}
	}
	cfg.Corpus.Source = getenv("CORPUS_SOURCE", "")
	cfg.Corpus.Path = getenv("CORPUS_PATH", "")
	cfg.Embedding.Provider = getenv("EMBEDDING_PROVIDER", "")
	cfg.Embedding.Model = getenv("EMBEDDING_MODEL", "")
	cfg.Embedding.Host = getenv("OLLAMA_HOST", "")
	cfg.Log.Level = getenv("LOG_LEVEL", "")

	applyEnvOverrides(&cfg)
	applyDefaults(&cfg)

	log.Println("Configuration loaded from environment variables, some settings may be missing")
	return &cfg
}

// applyEnvOverrides 민감 정보는 환경 변수가 우선한다
func applyEnvOverrides(cfg *Config) {
	if username := os.Getenv("DATABASE_USERNAME"); username != "" {
		cfg.DB.Username = username
	}
	if password := os.Getenv("DATABASE_PASSWORD"); password != "" {
		cfg.DB.Password = password
	}
	if dsn := os.Getenv("DB_DSN"); dsn != "" {
		cfg.DB.DSN = dsn
	}
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		cfg.Gemini.APIKey = apiKey
	}
	if apiKey := os.Getenv("OPENAI_API_KEY"); apiKey != "" {
		cfg.Embedding.APIKey = apiKey
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8000
	}
	cfg.Server.Addr = fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)

	if cfg.Corpus.Source == "" {
		cfg.Corpus.Source = "file"
	}
	if cfg.Corpus.Path == "" {
		cfg.Corpus.Path = "data/policies.json"
	}
	if cfg.Corpus.Table == "" {
		cfg.Corpus.Table = "youth_policies"
	}

	if cfg.Embedding.Provider == "" {
		cfg.Embedding.Provider = "none"
	}
	if cfg.Embedding.BatchSize <= 0 {
		cfg.Embedding.BatchSize = 64
	}
	if cfg.Embedding.Concurrency <= 0 {
		cfg.Embedding.Concurrency = 4
	}
	if cfg.Embedding.TimeoutSec <= 0 {
		cfg.Embedding.TimeoutSec = 300
	}

	if cfg.Gemini.Model == "" {
		cfg.Gemini.Model = "gemini-2.0-flash"
	}
	if cfg.Gemini.TimeoutSec <= 0 {
		cfg.Gemini.TimeoutSec = 30
	}

	if cfg.Recommend.MaxCacheSize <= 0 {
		cfg.Recommend.MaxCacheSize = 1000
	}
	if cfg.Recommend.DefaultTopK <= 0 {
		cfg.Recommend.DefaultTopK = 5
	}
	if cfg.Recommend.MaxTopK <= 0 {
		cfg.Recommend.MaxTopK = 20
	}

	if cfg.Summary.MaxCacheSize <= 0 {
		cfg.Summary.MaxCacheSize = 1000
	}
	if cfg.Summary.RateLimitPerMin <= 0 {
		cfg.Summary.RateLimitPerMin = 30
	}

	if cfg.Timeouts.RequestSec <= 0 {
		cfg.Timeouts.RequestSec = 15
	}
	if cfg.Timeouts.ResponseSec <= 0 {
		cfg.Timeouts.ResponseSec = 60
	}
	if cfg.Timeouts.IdleSec <= 0 {
		cfg.Timeouts.IdleSec = 120
	}

	if cfg.Debug.CacheResetFreq <= 0 {
		cfg.Debug.CacheResetFreq = 1800
	}
	if cfg.Scheduler.CheckIntervalSec <= 0 {
		cfg.Scheduler.CheckIntervalSec = 60
	}

	if cfg.DB.DSN == "" && cfg.DB.Host != "" {
		if cfg.DB.Charset == "" {
			cfg.DB.Charset = "utf8mb4"
		}
		parseTime := ""
		if cfg.DB.ParseTime {
			parseTime = "&parseTime=true"
		}
		cfg.DB.DSN = fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s%s",
			cfg.DB.Username,
			cfg.DB.Password,
			cfg.DB.Host,
			cfg.DB.Port,
			cfg.DB.Database,
			cfg.DB.Charset,
			parseTime)
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
