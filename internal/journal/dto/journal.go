package dto

import "mirror-backend/internal/journal/domain"

// CreateLogRequest is the body of POST /log.
// UserID is a pointer so that an explicit 0 passes the required check.
type CreateLogRequest struct {
	UserID *int64 `json:"user_id" binding:"required"`
	Text   string `json:"text" binding:"required"`
}

// ChatTurn is one prior exchange sent by the client
type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// MirrorChatRequest is the body of POST /mirror-chat
type MirrorChatRequest struct {
	UserID  *int64     `json:"user_id" binding:"required"`
	Message string     `json:"message" binding:"required"`
	History []ChatTurn `json:"history"`
}

// SummaryResponse carries the combined reflection over recent logs
type SummaryResponse struct {
	UserID          int64         `json:"user_id"`
	CombinedSummary string        `json:"combined_summary"`
	Logs            []*domain.Log `json:"logs"`
}

// ReflectResponse reports whether enough history exists for a mirror reflection
type ReflectResponse struct {
	UserID      int64         `json:"user_id"`
	MirrorReady bool          `json:"mirror_ready"`
	Reflection  *string       `json:"reflection,omitempty"`
	Logs        []*domain.Log `json:"logs"`
}

type MirrorChatResponse struct {
	Reply string `json:"reply"`
}
