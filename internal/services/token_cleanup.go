package services

import (
	"log/slog"
	"time"

	"github.com/lunarcommerce/lunar-backend/internal/models"
	"gorm.io/gorm"
)

// staleRevokedAfter is how long a revoked token row is kept before it is
// eligible for hard deletion.
const staleRevokedAfter = 7 * 24 * time.Hour

// SweepRefreshTokens hard-deletes tokens that are past expiry or revoked
// more than a week ago. Revocation itself never deletes rows; this sweep
// is the only path that does.
func SweepRefreshTokens(db *gorm.DB) (int64, error) {
	cutoff := time.Now().Add(-staleRevokedAfter)
	result := db.Where("expires_at < ? OR (revoked = true AND revoked_at < ?)", time.Now(), cutoff).
		Delete(&models.RefreshToken{})
	return result.RowsAffected, result.Error
}

// StartTokenCleanup runs the sweep on a daily ticker until done closes.
// It is deliberately out-of-band: no request path ever triggers it.
func StartTokenCleanup(db *gorm.DB, done chan struct{}) {
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				deleted, err := SweepRefreshTokens(db)
				if err != nil {
					slog.Error("refresh token sweep failed", "error", err)
				} else if deleted > 0 {
					slog.Info("refresh token sweep completed", "deleted", deleted)
				}
			case <-done:
				return
			}
		}
	}()
}
