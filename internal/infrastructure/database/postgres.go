package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"RBCMap-App/pkg/logger"
)

// PostgreSQLClient PostgreSQL直接接続クライアント
type PostgreSQLClient struct {
	DB *sql.DB
}

// PostgresConfig 接続設定。DSN が空なら Supabase の URL とパスワードから組み立てる
type PostgresConfig struct {
	DSN              string
	SupabaseURL      string
	SupabasePassword string
}

// BuildDSN 接続文字列を返す
func (c PostgresConfig) BuildDSN() (string, error) {
	if c.DSN != "" {
		return c.DSN, nil
	}
	if c.SupabaseURL == "" {
		return "", fmt.Errorf("DATABASE_URL または SUPABASE_URL 環境変数が設定されていません")
	}
	if c.SupabasePassword == "" {
		return "", fmt.Errorf("SUPABASE_DB_PASSWORD環境変数が設定されていません")
	}

	// https://xxx.supabase.co -> xxx.supabase.co
	host := strings.TrimPrefix(strings.TrimPrefix(c.SupabaseURL, "https://"), "http://")

	return fmt.Sprintf(
		"host=db.%s port=6543 user=postgres password=%s dbname=postgres sslmode=require",
		host, c.SupabasePassword,
	), nil
}

// NewPostgreSQLClient 新しいPostgreSQLクライアントを作成
func NewPostgreSQLClient(ctx context.Context, cfg PostgresConfig) (*PostgreSQLClient, error) {
	connStr, err := cfg.BuildDSN()
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("PostgreSQL接続の初期化に失敗: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("PostgreSQLへの接続に失敗: %w", err)
	}

	logger.Component("postgres").Info("✅ PostgreSQL connection established")
	return &PostgreSQLClient{
		DB: db,
	}, nil
}

// Close データベース接続を閉じる
func (pc *PostgreSQLClient) Close() error {
	if pc.DB != nil {
		return pc.DB.Close()
	}
	return nil
}

// HealthCheck データベース接続のヘルスチェック
func (pc *PostgreSQLClient) HealthCheck(ctx context.Context) error {
	if pc.DB == nil {
		return fmt.Errorf("PostgreSQLクライアントが初期化されていません")
	}
	return pc.DB.PingContext(ctx)
}
