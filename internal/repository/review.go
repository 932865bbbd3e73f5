package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/nexonbooks/docintake/gen/ent"
	"github.com/nexonbooks/docintake/gen/ent/reviewitem"
	"github.com/nexonbooks/docintake/internal/entity"
)

// ReviewRepository satisfies pipeline.ReviewSink and backs the manual review
// queue listing.
type ReviewRepository interface {
	Add(ctx context.Context, item entity.ReviewItem) error
	List(ctx context.Context, workspaceID uuid.UUID) ([]entity.ReviewItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type reviewRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewReviewRepository(client *ent.Client, logger *slog.Logger) ReviewRepository {
	return &reviewRepository{
		client: client,
		logger: logger,
	}
}

func (r *reviewRepository) Add(ctx context.Context, item entity.ReviewItem) error {
	builder := r.client.ReviewItem.Create().
		SetWorkspaceID(item.WorkspaceID).
		SetFilePath(item.FilePath).
		SetReason(item.Reason)
	if len(item.PartialData) > 0 {
		builder = builder.SetPartialData(item.PartialData)
	}

	if _, err := builder.Save(ctx); err != nil {
		r.logger.Error("failed to queue review item",
			"workspace_id", item.WorkspaceID, "file_path", item.FilePath, "error", err)
		return err
	}
	return nil
}

func (r *reviewRepository) List(ctx context.Context, workspaceID uuid.UUID) ([]entity.ReviewItem, error) {
	recs, err := r.client.ReviewItem.Query().
		Where(reviewitem.WorkspaceID(workspaceID)).
		Order(reviewitem.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list review items", "workspace_id", workspaceID, "error", err)
		return nil, err
	}
	result := make([]entity.ReviewItem, len(recs))
	for i, rec := range recs {
		result[i] = entity.ReviewItem{
			ID:          rec.ID,
			WorkspaceID: rec.WorkspaceID,
			FilePath:    rec.FilePath,
			Reason:      rec.Reason,
			PartialData: rec.PartialData,
			CreatedAt:   rec.CreatedAt,
		}
	}
	return result, nil
}

func (r *reviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.client.ReviewItem.DeleteOneID(id).Exec(ctx); err != nil {
		r.logger.Error("failed to delete review item", "review_item_id", id, "error", err)
		return err
	}
	return nil
}
