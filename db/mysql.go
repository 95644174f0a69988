package db

import (
	"context"
	"database/sql"
	"time"

	"youth_policy_ai/config"

	_ "github.com/go-sql-driver/mysql"
)

var (
	DB *sql.DB // 데이터베이스 연결
)

// InitMySQLWithConfig 설정으로 연결 풀을 초기화하고 연결을 확인한다
func InitMySQLWithConfig(ctx context.Context, cfg *config.Config) error {
	var err error
	DB, err = sql.Open("mysql", cfg.DB.DSN)
	if err != nil {
		return err
	}

	// 설정값이 없으면 기본값 사용
	maxOpenConns := cfg.DB.MaxOpenConns
	if maxOpenConns <= 0 {
		maxOpenConns = 10 // 코퍼스 로드 전용이라 작게 유지
	}

	maxIdleConns := cfg.DB.MaxIdleConns
	if maxIdleConns <= 0 {
		maxIdleConns = 2
	}

	connMaxLifetime := cfg.DB.ConnMaxLifetime
	if connMaxLifetime <= 0 {
		connMaxLifetime = 60 // 분
	}

	DB.SetMaxOpenConns(maxOpenConns)
	DB.SetMaxIdleConns(maxIdleConns)
	DB.SetConnMaxLifetime(time.Duration(connMaxLifetime) * time.Minute)

	return DB.PingContext(ctx)
}

// Close 연결 풀 종료
func Close() error {
	if DB == nil {
		return nil
	}
	return DB.Close()
}
