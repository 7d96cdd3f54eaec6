package repository

import (
	"RBCMap-App/internal/domain/model"
	"RBCMap-App/internal/domain/repository"
	"RBCMap-App/pkg/logger"
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const destinationsCollection = "destinations"

// FirestoreDestinationRepository Firestoreを使用した目的地の永続化（プロファイルごとに1ドキュメント）
type FirestoreDestinationRepository struct {
	client *firestore.Client
}

// NewFirestoreDestinationRepository 新しいFirestoreDestinationRepositoryインスタンスを作成
func NewFirestoreDestinationRepository(client *firestore.Client) repository.DestinationRepository {
	return &FirestoreDestinationRepository{
		client: client,
	}
}

// Save 目的地ドキュメントを上書きする
func (r *FirestoreDestinationRepository) Save(ctx context.Context, profile string, destination *model.Coordinate, savedAt time.Time) error {
	record := model.DestinationRecord{
		Destination: destination,
		SavedAt:     savedAt,
	}

	if _, err := r.client.Collection(destinationsCollection).Doc(profile).Set(ctx, record); err != nil {
		return fmt.Errorf("目的地の保存に失敗しました: %w", err)
	}

	logger.Component("firestore").WithField("profile", profile).Debug("✅ Destination saved")
	return nil
}

// Load 目的地ドキュメントを取得する。存在しなければ (nil, nil)
func (r *FirestoreDestinationRepository) Load(ctx context.Context, profile string) (*model.Coordinate, error) {
	doc, err := r.client.Collection(destinationsCollection).Doc(profile).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("目的地の取得に失敗しました: %w", err)
	}

	var record model.DestinationRecord
	if err := doc.DataTo(&record); err != nil {
		return nil, fmt.Errorf("データの変換に失敗しました: %w", err)
	}
	return record.Destination, nil
}
