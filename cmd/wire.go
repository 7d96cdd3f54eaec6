package main

import (
	"context"
	"fmt"

	"RBCMap-App/internal/config"
	"RBCMap-App/internal/domain/repository"
	"RBCMap-App/internal/infrastructure/database"
	"RBCMap-App/internal/infrastructure/firestore"
	repoimpl "RBCMap-App/internal/repository"
	"RBCMap-App/pkg/logger"
)

// dependencies 設定に応じて選ばれたリポジトリと、終了時に閉じる接続
type dependencies struct {
	Catalog     repository.CatalogRepository
	Destination repository.DestinationRepository
	closers     []func() error
}

func (d *dependencies) Close() {
	for _, c := range d.closers {
		if err := c(); err != nil {
			logger.Log.WithError(err).Warn("Failed to close connection")
		}
	}
}

func buildDependencies(ctx context.Context, cfg *config.Config) (*dependencies, error) {
	deps := &dependencies{}

	switch cfg.CatalogSource {
	case config.CatalogSourcePostgres:
		client, err := database.NewPostgreSQLClient(ctx, database.PostgresConfig{
			DSN:              cfg.DatabaseURL,
			SupabaseURL:      cfg.SupabaseURL,
			SupabasePassword: cfg.SupabaseDBPassword,
		})
		if err != nil {
			return nil, fmt.Errorf("PostgreSQLクライアント初期化失敗: %w", err)
		}
		deps.closers = append(deps.closers, client.Close)
		deps.Catalog = repoimpl.NewPostgresCatalogRepository(client)
	case config.CatalogSourceSupabase:
		client, err := database.NewSupabaseClient(cfg.SupabaseURL, cfg.SupabaseAnonKey)
		if err != nil {
			return nil, fmt.Errorf("Supabaseクライアント初期化失敗: %w", err)
		}
		if err := client.HealthCheck(); err != nil {
			return nil, fmt.Errorf("Supabaseヘルスチェック失敗: %w", err)
		}
		deps.Catalog = repoimpl.NewSupabaseCatalogRepository(client)
	default:
		deps.Catalog = repoimpl.NewFileCatalogRepository(cfg.CatalogFile)
	}

	switch cfg.DestinationStore {
	case config.DestinationStoreFirestore:
		client, err := firestore.NewFirestoreClient(ctx, cfg.FirestoreProjectID)
		if err != nil {
			deps.Close()
			return nil, err
		}
		deps.closers = append(deps.closers, client.Close)
		deps.Destination = repoimpl.NewFirestoreDestinationRepository(client.GetClient())
	case config.DestinationStoreMemory:
		deps.Destination = repoimpl.NewMemoryDestinationRepository()
	default:
		deps.Destination = repoimpl.NewFileDestinationRepository(cfg.DestinationFile)
	}

	return deps, nil
}
