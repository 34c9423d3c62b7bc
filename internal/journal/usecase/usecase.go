package usecase

import (
	"context"
	"errors"

	"mirror-backend/internal/journal/domain"
	"mirror-backend/internal/journal/dto"
	"mirror-backend/pkg/ai"
)

// ErrUserNotFound is returned by read paths for an id that never logged
var ErrUserNotFound = errors.New("user not found")

const (
	// RecentLogLimit bounds how many entries feed summaries and reflections
	RecentLogLimit = 5
	// MirrorThreshold is the history needed before a reflection is offered
	MirrorThreshold = 5

	NoLogsMessage = "No logs yet. Submit your first entry to begin."
)

// Enricher is the AI surface the journal depends on
type Enricher interface {
	Summarize(ctx context.Context, text string) ai.Result
	Reflect(ctx context.Context, userName string, texts []string) ai.Result
	Chat(ctx context.Context, userName, message string, history []ai.Message) ai.Result
	Probe(ctx context.Context) ai.ProbeResult
}

// JournalUsecase defines the journal business operations
type JournalUsecase interface {
	CreateLog(ctx context.Context, userID int64, text string) (*domain.Log, error)
	GetSummary(ctx context.Context, userID int64) (*dto.SummaryResponse, error)
	GetReflection(ctx context.Context, userID int64) (*dto.ReflectResponse, error)
	MirrorChat(ctx context.Context, userID int64, message string, history []dto.ChatTurn) (string, error)
	ProbeAI(ctx context.Context) ai.ProbeResult
}
