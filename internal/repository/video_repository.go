package repository

import (
	"context"

	"github.com/lshigami/classroom-portal/internal/model"
	"gorm.io/gorm"
)

type VideoRepository interface {
	Create(ctx context.Context, video *model.Video) error
	FindAll(ctx context.Context) ([]model.Video, error)
	Delete(ctx context.Context, id uint) error
}

type videoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) VideoRepository {
	return &videoRepository{db: db}
}

// Create returns ErrDuplicate when the YouTube video id is already stored.
func (r *videoRepository) Create(ctx context.Context, video *model.Video) error {
	return translateError(r.db.WithContext(ctx).Create(video).Error)
}

func (r *videoRepository) FindAll(ctx context.Context) ([]model.Video, error) {
	var videos []model.Video
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&videos).Error
	return videos, translateError(err)
}

func (r *videoRepository) Delete(ctx context.Context, id uint) error {
	return affectedOrNotFound(r.db.WithContext(ctx).Delete(&model.Video{}, id))
}
