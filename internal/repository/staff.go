package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/intiprima/backoffice/internal/domain"
)

// staffUserRepository implements domain.StaffUserRepository using GORM.
type staffUserRepository struct {
	db *gorm.DB
}

// NewStaffUsers creates a StaffUserRepository backed by the given database.
func NewStaffUsers(db *gorm.DB) domain.StaffUserRepository {
	return &staffUserRepository{db: db}
}

// GetByEmail retrieves a staff account by email.
func (r *staffUserRepository) GetByEmail(ctx context.Context, email string) (*domain.StaffUser, error) {
	var user domain.StaffUser
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, mapError(err)
	}
	return &user, nil
}
