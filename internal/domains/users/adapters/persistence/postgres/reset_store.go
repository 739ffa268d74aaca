package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	userports "github.com/nexashop/storefront/internal/domains/users/ports"
)

// ResetTokenStore persists single-use password reset tokens in PostgreSQL.
type ResetTokenStore struct {
	db *gorm.DB
}

func NewResetTokenStore(db *gorm.DB) *ResetTokenStore {
	return &ResetTokenStore{db: db}
}

type resetRecord struct {
	Token     string    `gorm:"primaryKey;column:token;size:512"`
	UserID    string    `gorm:"column:user_id;type:uuid;index"`
	ExpiresAt time.Time `gorm:"column:expires_at;index"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (resetRecord) TableName() string { return "password_resets" }

func (s *ResetTokenStore) Save(ctx context.Context, token, userID string, expiresAt time.Time) error {
	if err := s.ensureDB(); err != nil {
		return err
	}
	rec := resetRecord{Token: token, UserID: userID, ExpiresAt: expiresAt}
	return s.db.WithContext(ctx).Create(&rec).Error
}

// Consume deletes the token row and returns the user it was issued for. The
// delete doubles as the single-use guard.
func (s *ResetTokenStore) Consume(ctx context.Context, token string) (string, error) {
	if err := s.ensureDB(); err != nil {
		return "", err
	}
	var rec resetRecord
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&rec, "token = ?", token).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return userports.ErrResetTokenNotFound
			}
			return err
		}
		return tx.Delete(&resetRecord{}, "token = ?", token).Error
	})
	if err != nil {
		return "", err
	}
	if time.Now().After(rec.ExpiresAt) {
		return "", userports.ErrResetTokenNotFound
	}
	return rec.UserID, nil
}

func (s *ResetTokenStore) ensureDB() error {
	if s == nil || s.db == nil {
		return errors.New("postgres reset token store not configured")
	}
	return nil
}

var _ userports.ResetTokenStore = (*ResetTokenStore)(nil)
