package delivery

import (
	"errors"
	"net/http"
	"strconv"

	"mirror-backend/internal/journal/dto"
	"mirror-backend/internal/journal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// JournalHandler handles journal-related HTTP requests
type JournalHandler struct {
	journalUsecase usecase.JournalUsecase
	logger         *zap.Logger
}

// NewJournalHandler creates a new JournalHandler
func NewJournalHandler(journalUsecase usecase.JournalUsecase, logger *zap.Logger) *JournalHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &JournalHandler{
		journalUsecase: journalUsecase,
		logger:         logger.Named("http"),
	}
}

// CreateLog stores a journal entry, creating the user on first use
// POST /log
func (h *JournalHandler) CreateLog(c *gin.Context) {
	var req dto.CreateLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log, err := h.journalUsecase.CreateLog(c.Request.Context(), *req.UserID, req.Text)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, log)
}

// GetSummary returns a combined reflection over the newest entries
// GET /summary/:user_id
func (h *JournalHandler) GetSummary(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}

	resp, err := h.journalUsecase.GetSummary(c.Request.Context(), userID)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetReflection returns the mirror reflection once enough entries exist
// GET /reflect/:user_id
func (h *JournalHandler) GetReflection(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}

	resp, err := h.journalUsecase.GetReflection(c.Request.Context(), userID)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// MirrorChat answers a message in the user's mirror voice
// POST /mirror-chat
func (h *JournalHandler) MirrorChat(c *gin.Context) {
	var req dto.MirrorChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply, err := h.journalUsecase.MirrorChat(c.Request.Context(), *req.UserID, req.Message, req.History)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MirrorChatResponse{Reply: reply})
}

// ProbeAI reports whether the AI provider answers. Failures are carried in
// the body, never in the status code.
// GET /debug/ai
func (h *JournalHandler) ProbeAI(c *gin.Context) {
	c.JSON(http.StatusOK, h.journalUsecase.ProbeAI(c.Request.Context()))
}

func (h *JournalHandler) fail(c *gin.Context, err error) {
	if errors.Is(err, usecase.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	h.logger.Error("Request failed",
		zap.String("path", c.FullPath()),
		zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}

func userIDParam(c *gin.Context) (int64, bool) {
	userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id must be an integer"})
		return 0, false
	}
	return userID, true
}
