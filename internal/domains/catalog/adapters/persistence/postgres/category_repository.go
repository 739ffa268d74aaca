package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/nexashop/storefront/internal/domains/catalog/domain"
	"github.com/nexashop/storefront/internal/domains/catalog/ports"
)

var _ ports.CategoryRepository = (*CategoryRepository)(nil)

// CategoryRepository persists browsing categories in PostgreSQL.
type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

type categoryRecord struct {
	ID          string    `gorm:"primaryKey;column:id;size:64"`
	Name        string    `gorm:"column:name"`
	Slug        string    `gorm:"column:slug;uniqueIndex"`
	Description string    `gorm:"column:description"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (categoryRecord) TableName() string { return "categories" }

// Save inserts or updates a category keyed by slug.
func (r *CategoryRepository) Save(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	if r == nil || r.db == nil {
		return nil, errors.New("postgres category repository not configured")
	}
	if category == nil {
		return nil, errors.New("category is nil")
	}
	clone := *category
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	record := categoryRecord{
		ID:          clone.ID,
		Name:        clone.Name,
		Slug:        clone.Slug,
		Description: clone.Description,
		CreatedAt:   clone.CreatedAt,
	}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "description"}),
		}).
		Create(&record).Error; err != nil {
		return nil, err
	}
	saved := clone
	return &saved, nil
}

// List returns all categories ordered by name.
func (r *CategoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	if r == nil || r.db == nil {
		return nil, errors.New("postgres category repository not configured")
	}
	var records []categoryRecord
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	list := make([]*domain.Category, 0, len(records))
	for _, record := range records {
		list = append(list, &domain.Category{
			ID:          record.ID,
			Name:        record.Name,
			Slug:        record.Slug,
			Description: record.Description,
			CreatedAt:   record.CreatedAt,
		})
	}
	return list, nil
}
