package usecase

import (
	"context"
	"fmt"

	"mirror-backend/internal/journal/domain"
	"mirror-backend/internal/journal/dto"
	"mirror-backend/internal/journal/repository"
	"mirror-backend/pkg/ai"
	"mirror-backend/pkg/metrics"
	"mirror-backend/pkg/sentiment"

	"go.uber.org/zap"
)

// journalUsecase implements JournalUsecase
type journalUsecase struct {
	users    repository.UserRepository
	logs     repository.LogRepository
	enricher Enricher
	logger   *zap.Logger
}

// NewJournalUsecase creates a new instance of journalUsecase
func NewJournalUsecase(users repository.UserRepository, logs repository.LogRepository, enricher Enricher, logger *zap.Logger) JournalUsecase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &journalUsecase{
		users:    users,
		logs:     logs,
		enricher: enricher,
		logger:   logger.Named("journal"),
	}
}

// CreateLog runs to completion once started, even if the client goes away.
// Provider calls stay bounded by the enricher timeout.
func (u *journalUsecase) CreateLog(ctx context.Context, userID int64, text string) (*domain.Log, error) {
	ctx = context.WithoutCancel(ctx)

	log := &domain.Log{Text: text}
	created, err := u.logs.CreateWithUser(ctx, domain.PlaceholderUser(userID), log)
	if err != nil {
		return nil, fmt.Errorf("create log for user %d: %w", userID, err)
	}
	if created {
		u.logger.Info("Provisioned user on first log", zap.Int64("user_id", userID))
	}

	summary := u.textOrFallback("summarize", userID, u.enricher.Summarize(ctx, text), func() string {
		return ai.SummaryFallback(text)
	})
	tone := string(sentiment.Classify(text))
	log.Summary = &summary
	log.Sentiment = &tone

	if err := u.logs.UpdateEnrichment(ctx, log.ID, log.Summary, log.Sentiment); err != nil {
		return nil, fmt.Errorf("save enrichment for log %d: %w", log.ID, err)
	}
	return log, nil
}

func (u *journalUsecase) GetSummary(ctx context.Context, userID int64) (*dto.SummaryResponse, error) {
	user, logs, err := u.recentLogs(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := &dto.SummaryResponse{UserID: userID, Logs: logs}
	if len(logs) == 0 {
		resp.CombinedSummary = NoLogsMessage
		return resp, nil
	}
	resp.CombinedSummary = u.reflect(ctx, user, logs)
	return resp, nil
}

func (u *journalUsecase) GetReflection(ctx context.Context, userID int64) (*dto.ReflectResponse, error) {
	user, logs, err := u.recentLogs(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := &dto.ReflectResponse{UserID: userID, Logs: logs}
	if len(logs) < MirrorThreshold {
		return resp, nil
	}
	reflection := u.reflect(ctx, user, logs)
	resp.MirrorReady = true
	resp.Reflection = &reflection
	return resp, nil
}

func (u *journalUsecase) MirrorChat(ctx context.Context, userID int64, message string, history []dto.ChatTurn) (string, error) {
	user, err := u.findUser(ctx, userID)
	if err != nil {
		return "", err
	}

	turns := make([]ai.Message, 0, len(history))
	for _, h := range history {
		turns = append(turns, ai.Message{Role: ai.Role(h.Role), Content: h.Content})
	}

	res := u.enricher.Chat(ctx, user.Name, message, turns)
	return u.textOrFallback("chat", userID, res, func() string {
		return ai.ChatFallback(message)
	}), nil
}

func (u *journalUsecase) ProbeAI(ctx context.Context) ai.ProbeResult {
	return u.enricher.Probe(ctx)
}

func (u *journalUsecase) findUser(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find user %d: %w", userID, err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// recentLogs returns the user and their newest logs in chronological order
func (u *journalUsecase) recentLogs(ctx context.Context, userID int64) (*domain.User, []*domain.Log, error) {
	user, err := u.findUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	logs, err := u.logs.FindRecentByUserID(ctx, userID, RecentLogLimit)
	if err != nil {
		return nil, nil, fmt.Errorf("load logs for user %d: %w", userID, err)
	}
	if logs == nil {
		logs = []*domain.Log{}
	}
	return user, domain.Chronological(logs), nil
}

func (u *journalUsecase) reflect(ctx context.Context, user *domain.User, logs []*domain.Log) string {
	texts := domain.Texts(logs)
	return u.textOrFallback("reflect", user.ID, u.enricher.Reflect(ctx, user.Name, texts), func() string {
		return ai.ReflectionFallback(user.Name, sentiment.Distribution(texts))
	})
}

// textOrFallback substitutes the deterministic text when a live call failed
func (u *journalUsecase) textOrFallback(operation string, userID int64, res ai.Result, fallback func() string) string {
	if !res.Failed() {
		u.logger.Debug("Enrichment served",
			zap.String("operation", operation),
			zap.Int64("user_id", userID),
			zap.String("source", string(res.Source)))
		return res.Text
	}
	metrics.RecordEnrichment(operation, metrics.OutcomeFallback)
	u.logger.Warn("Using fallback after AI failure",
		zap.String("operation", operation),
		zap.Int64("user_id", userID),
		zap.Error(res.Err))
	return fallback()
}
