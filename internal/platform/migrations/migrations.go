package migrations

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Run applies the schema for the bounded contexts. Intended to replace adapter-level automigrate.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(
		&productRecord{},
		&categoryRecord{},
		&orderRecord{},
		&userRecord{},
		&sessionRecord{},
		&resetRecord{},
	)
}

// Product schema mirrors the catalog Postgres adapter.
type productRecord struct {
	ID          string         `gorm:"primaryKey;column:id;size:64"`
	Name        string         `gorm:"column:name;index"`
	Description string         `gorm:"column:description"`
	PriceCents  int64          `gorm:"column:price_cents"`
	Images      pq.StringArray `gorm:"column:images;type:text[]"`
	Category    string         `gorm:"column:category;index"`
	Stock       int            `gorm:"column:stock"`
	Featured    bool           `gorm:"column:featured;index"`
	CreatedAt   time.Time      `gorm:"column:created_at;index"`
	UpdatedAt   time.Time      `gorm:"column:updated_at"`
}

func (productRecord) TableName() string { return "products" }

// Category schema mirrors the catalog Postgres adapter.
type categoryRecord struct {
	ID          string    `gorm:"primaryKey;column:id;size:64"`
	Name        string    `gorm:"column:name"`
	Slug        string    `gorm:"column:slug;uniqueIndex"`
	Description string    `gorm:"column:description"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (categoryRecord) TableName() string { return "categories" }

// Order schema mirrors the orders Postgres adapter.
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

// User schema mirrors the users Postgres adapter.
type userRecord struct {
	ID           string    `gorm:"primaryKey;column:id;type:uuid"`
	Email        string    `gorm:"column:email;uniqueIndex"`
	Name         string    `gorm:"column:name"`
	PasswordHash string    `gorm:"column:password_hash"`
	Role         string    `gorm:"column:role;type:varchar(16);index"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (userRecord) TableName() string { return "user_profiles" }

// Session schema mirrors the users Postgres session store.
type sessionRecord struct {
	Token     string    `gorm:"primaryKey;column:token;size:512"`
	UserID    string    `gorm:"column:user_id;type:uuid;index"`
	ExpiresAt time.Time `gorm:"column:expires_at;index"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (sessionRecord) TableName() string { return "user_sessions" }

// Reset token schema mirrors the users Postgres reset store.
type resetRecord struct {
	Token     string    `gorm:"primaryKey;column:token;size:512"`
	UserID    string    `gorm:"column:user_id;type:uuid;index"`
	ExpiresAt time.Time `gorm:"column:expires_at;index"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (resetRecord) TableName() string { return "password_resets" }
