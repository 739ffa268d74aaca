package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/nexashop/storefront/internal/domains/orders/domain"
	"github.com/nexashop/storefront/internal/domains/orders/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists orders in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

type lineRecord struct {
	ProductID    string `json:"product_id"`
	ProductName  string `json:"product_name"`
	ProductPrice int64  `json:"product_price"`
	ProductImage string `json:"product_image"`
	Quantity     int    `json:"quantity"`
}

type orderRecord struct {
	ID         string       `gorm:"primaryKey;column:id;size:64"`
	UserEmail  string       `gorm:"column:user_email;index"`
	UserName   string       `gorm:"column:user_name"`
	Address    string       `gorm:"column:user_address"`
	City       string       `gorm:"column:user_city"`
	PostalCode string       `gorm:"column:user_postal_code"`
	Country    string       `gorm:"column:user_country"`
	Items      []lineRecord `gorm:"column:items;serializer:json"`
	TotalCents int64        `gorm:"column:total_cents"`
	Status     string       `gorm:"column:status;type:varchar(32);index"`
	CreatedAt  time.Time    `gorm:"column:created_at;index"`
	UpdatedAt  time.Time    `gorm:"column:updated_at"`
}

func (orderRecord) TableName() string { return "orders" }

// Save inserts or updates an order keyed by id.
func (r *Repository) Save(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if order == nil {
		return nil, errors.New("order is nil")
	}
	clone := *order
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	record := toRecord(&clone)
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"status", "updated_at"}),
		}).
		Create(&record).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, record.ID)
}

// GetByID fetches an order by id.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record orderRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return fromRecord(&record), nil
}

// ListByEmail returns the customer's orders, newest first.
func (r *Repository) ListByEmail(ctx context.Context, email string) ([]*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []orderRecord
	if err := r.db.WithContext(ctx).
		Where("lower(user_email) = ?", strings.ToLower(strings.TrimSpace(email))).
		Order("created_at DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return fromRecords(records), nil
}

// List returns all orders, newest first.
func (r *Repository) List(ctx context.Context) ([]*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []orderRecord
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	return fromRecords(records), nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres order repository not configured")
	}
	return nil
}

func toRecord(o *domain.Order) orderRecord {
	items := make([]lineRecord, 0, len(o.Items))
	for _, line := range o.Items {
		items = append(items, lineRecord{
			ProductID:    line.ProductID,
			ProductName:  line.ProductName,
			ProductPrice: line.ProductPrice,
			ProductImage: line.ProductImage,
			Quantity:     line.Quantity,
		})
	}
	return orderRecord{
		ID:         o.ID,
		UserEmail:  o.UserEmail,
		UserName:   o.UserName,
		Address:    o.Address,
		City:       o.City,
		PostalCode: o.PostalCode,
		Country:    o.Country,
		Items:      items,
		TotalCents: o.TotalCents,
		Status:     string(o.Status),
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
}

func fromRecord(record *orderRecord) *domain.Order {
	items := make([]domain.Line, 0, len(record.Items))
	for _, line := range record.Items {
		items = append(items, domain.Line{
			ProductID:    line.ProductID,
			ProductName:  line.ProductName,
			ProductPrice: line.ProductPrice,
			ProductImage: line.ProductImage,
			Quantity:     line.Quantity,
		})
	}
	return &domain.Order{
		ID:         record.ID,
		UserEmail:  record.UserEmail,
		UserName:   record.UserName,
		Address:    record.Address,
		City:       record.City,
		PostalCode: record.PostalCode,
		Country:    record.Country,
		Items:      items,
		TotalCents: record.TotalCents,
		Status:     domain.Status(record.Status),
		CreatedAt:  record.CreatedAt,
		UpdatedAt:  record.UpdatedAt,
	}
}

func fromRecords(records []orderRecord) []*domain.Order {
	list := make([]*domain.Order, 0, len(records))
	for i := range records {
		list = append(list, fromRecord(&records[i]))
	}
	return list
}
