package repository

import (
	"context"

	"github.com/lshigami/classroom-portal/internal/model"
	"gorm.io/gorm"
)

type UserRepository interface {
	FindByUID(ctx context.Context, uid string) (*model.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByUID(ctx context.Context, uid string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, "uid = ?", uid).Error; err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}
