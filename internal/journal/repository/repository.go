package repository

import (
	"context"

	"mirror-backend/internal/journal/domain"
)

// UserRepository defines read access to users
type UserRepository interface {
	// FindByID returns the user, or nil if it does not exist
	FindByID(ctx context.Context, id int64) (*domain.User, error)
}

// LogRepository defines the interface for journal entry data access
type LogRepository interface {
	// CreateWithUser inserts log, first provisioning owner when no user with
	// owner.ID exists. Both writes share one transaction. created reports
	// whether owner was inserted.
	CreateWithUser(ctx context.Context, owner *domain.User, log *domain.Log) (created bool, err error)

	// UpdateEnrichment sets the summary and sentiment of an existing log
	UpdateEnrichment(ctx context.Context, id int64, summary, sentiment *string) error

	// FindRecentByUserID returns up to limit logs of a user, newest first
	FindRecentByUserID(ctx context.Context, userID int64, limit int) ([]*domain.Log, error)
}
