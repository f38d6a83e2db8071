package quiz

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/question"
	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
)

// HTTPHandler exposes the quiz endpoint.
type HTTPHandler struct {
	svc    *Service
	logger zerolog.Logger
}

func NewHTTPHandler(svc *Service, logger zerolog.Logger) *HTTPHandler {
	return &HTTPHandler{
		svc:    svc,
		logger: logger.With().Str("component", "quiz_http").Logger(),
	}
}

// Register mounts the handler's routes.
func (h *HTTPHandler) Register(r gin.IRouter) {
	r.POST("/quizzes", h.Play)
}

type quizCategory struct {
	ID   *question.FlexInt `json:"id"`
	Type any               `json:"type"`
}

type playRequest struct {
	QuizCategory      *quizCategory `json:"quiz_category"`
	PreviousQuestions []int32       `json:"previous_questions"`
}

var errMissingCategory = errors.New("quiz_category.id is required")

// Play handles POST /quizzes.
func (h *HTTPHandler) Play(c *gin.Context) {
	var req playRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debug().Err(err).Msg("rejecting malformed quiz body")
		httperrors.AbortWithError(c, http.StatusBadRequest, err)
		return
	}
	if req.QuizCategory == nil || req.QuizCategory.ID == nil {
		h.logger.Debug().Msg("rejecting quiz body without category")
		httperrors.AbortWithError(c, http.StatusBadRequest, errMissingCategory)
		return
	}

	round, err := h.svc.Next(c.Request.Context(), int32(*req.QuizCategory.ID), req.PreviousQuestions)
	if err != nil {
		h.logger.Error().Err(err).Int("asked", len(req.PreviousQuestions)).Msg("quiz pick failed")
		httperrors.AbortWithError(c, http.StatusInternalServerError, err)
		return
	}

	var payload any = false
	if round.Question != nil {
		payload = round.Question
	}
	c.JSON(http.StatusOK, gin.H{
		"success":           true,
		"question":          payload,
		"previousQuestions": round.PreviousQuestions,
	})
}
