package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"RBCMap-App/internal/domain/model"
)

// カタログの読み込み元
const (
	CatalogSourcePostgres = "postgres"
	CatalogSourceSupabase = "supabase"
	CatalogSourceFile     = "file"
)

// 目的地の保存先
const (
	DestinationStoreFirestore = "firestore"
	DestinationStoreFile      = "file"
	DestinationStoreMemory    = "memory"
)

// Config 環境変数から読み込むアプリケーション設定
type Config struct {
	Port      string
	LogLevel  string
	LogFormat string

	CatalogSource string
	CatalogFile   string

	DestinationStore string
	DestinationFile  string

	FirestoreProjectID string
	SupabaseURL        string
	SupabaseAnonKey    string
	SupabaseDBPassword string
	DatabaseURL        string

	Metric      model.DistanceMetric
	DefaultZoom int
	MinimapSize int
	Tracked     []model.Category
}

// Load .env（あれば）と環境変数から設定を読み込む
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using system environment variables")
	}
	return FromEnv(os.Getenv)
}

// FromEnv 任意の参照関数から設定を組み立てる
func FromEnv(getenv func(string) string) (*Config, error) {
	get := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}

	cfg := &Config{
		Port:               get("PORT", "8080"),
		LogLevel:           get("LOG_LEVEL", "info"),
		LogFormat:          get("LOG_FORMAT", "text"),
		CatalogSource:      get("CATALOG_SOURCE", CatalogSourceFile),
		CatalogFile:        get("CATALOG_FILE", "catalog.yaml"),
		DestinationStore:   get("DESTINATION_STORE", DestinationStoreFile),
		DestinationFile:    get("DESTINATION_FILE", "destination.yaml"),
		FirestoreProjectID: get("FIRESTORE_PROJECT_ID", ""),
		SupabaseURL:        get("SUPABASE_URL", ""),
		SupabaseAnonKey:    get("SUPABASE_ANON_KEY", ""),
		SupabaseDBPassword: get("SUPABASE_DB_PASSWORD", ""),
		DatabaseURL:        get("DATABASE_URL", ""),
	}

	switch cfg.CatalogSource {
	case CatalogSourcePostgres, CatalogSourceSupabase, CatalogSourceFile:
	default:
		return nil, &ValidationError{Field: "CATALOG_SOURCE", Message: "postgres / supabase / file のいずれかを指定してください"}
	}

	switch cfg.DestinationStore {
	case DestinationStoreFirestore, DestinationStoreFile, DestinationStoreMemory:
	default:
		return nil, &ValidationError{Field: "DESTINATION_STORE", Message: "firestore / file / memory のいずれかを指定してください"}
	}

	metric, ok := model.ParseDistanceMetric(get("DISTANCE_METRIC", string(model.MetricChebyshev)))
	if !ok {
		return nil, &ValidationError{Field: "DISTANCE_METRIC", Message: "chebyshev または manhattan を指定してください"}
	}
	cfg.Metric = metric

	zoom, err := strconv.Atoi(get("DEFAULT_ZOOM", strconv.Itoa(model.DefaultZoom)))
	if err != nil || zoom < model.MinZoom || zoom > model.MaxZoom {
		return nil, &ValidationError{Field: "DEFAULT_ZOOM", Message: fmt.Sprintf("%dから%dの整数を指定してください", model.MinZoom, model.MaxZoom)}
	}
	cfg.DefaultZoom = zoom

	size, err := strconv.Atoi(get("MINIMAP_SIZE", strconv.Itoa(model.DefaultMinimapSize)))
	if err != nil || size <= 0 {
		return nil, &ValidationError{Field: "MINIMAP_SIZE", Message: "正の整数を指定してください"}
	}
	cfg.MinimapSize = size

	tracked, err := parseCategories(get("TRACKED_CATEGORIES", "bank,transit,tavern"))
	if err != nil {
		return nil, &ValidationError{Field: "TRACKED_CATEGORIES", Message: err.Error()}
	}
	cfg.Tracked = tracked

	return cfg, nil
}

func parseCategories(s string) ([]model.Category, error) {
	var out []model.Category
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		c, err := model.ParseCategory(part)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// ValidationError 設定値のエラー
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
