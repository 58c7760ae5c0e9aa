package repository

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"hospital-admin-backend/internal/models"

	"gorm.io/gorm"
)

var ErrSessionNotFound = errors.New("session not found or expired")

// SessionRepository backs the server-side session store. Only the SHA-256
// hash of a session token is persisted; the raw token exists solely in the
// client cookie.
type SessionRepository struct {
	db *gorm.DB
}

func NewSessionRepo(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create stores a new session row keyed by the hash of token.
func (r *SessionRepository) Create(token string, sess *models.Session) error {
	sess.TokenHash = hashToken(token)
	return r.db.Create(sess).Error
}

// Find returns the unexpired session matching token.
func (r *SessionRepository) Find(token string) (*models.Session, error) {
	var sess models.Session
	err := r.db.
		Where("token_hash = ? AND expires_at > ?", hashToken(token), time.Now()).
		First(&sess).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return &sess, nil
}

// Destroy removes the session matching token. Destroying a token with no
// matching row is not an error.
func (r *SessionRepository) Destroy(token string) error {
	return r.db.Where("token_hash = ?", hashToken(token)).Delete(&models.Session{}).Error
}

// Regenerate atomically replaces the session named by oldToken with a fresh
// one keyed by newToken, the fixation defense applied on every login.
func (r *SessionRepository) Regenerate(oldToken, newToken string, sess *models.Session) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if oldToken != "" {
			if err := tx.Where("token_hash = ?", hashToken(oldToken)).Delete(&models.Session{}).Error; err != nil {
				return err
			}
		}
		sess.TokenHash = hashToken(newToken)
		return tx.Create(sess).Error
	})
}

// DeleteExpired purges sessions past their absolute expiry and reports how
// many rows were removed.
func (r *SessionRepository) DeleteExpired() (int64, error) {
	result := r.db.Where("expires_at <= ?", time.Now()).Delete(&models.Session{})
	return result.RowsAffected, result.Error
}

func hashToken(token string) string {
	hash := sha256.Sum256([]byte(token))
	return hex.EncodeToString(hash[:])
}
