package question

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/db/repository"
	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
)

// HTTPHandler exposes the category and question endpoints.
type HTTPHandler struct {
	svc    *Service
	logger zerolog.Logger
}

// NewHTTPHandler constructs a question HTTP handler.
func NewHTTPHandler(svc *Service, logger zerolog.Logger) *HTTPHandler {
	return &HTTPHandler{
		svc:    svc,
		logger: logger.With().Str("component", "question_http").Logger(),
	}
}

// Register mounts the handler's routes.
func (h *HTTPHandler) Register(r gin.IRouter) {
	r.GET("/categories", h.ListCategories)
	r.GET("/categories/:id/questions", h.ListCategoryQuestions)
	r.GET("/questions", h.ListQuestions)
	r.POST("/questions", h.CreateOrSearch)
	r.DELETE("/questions/:id", h.DeleteQuestion)
}

// ListCategories handles GET /categories.
func (h *HTTPHandler) ListCategories(c *gin.Context) {
	cats, err := h.svc.Categories(c.Request.Context())
	if err != nil {
		httperrors.AbortWithError(c, http.StatusInternalServerError, err)
		return
	}
	if len(cats) == 0 {
		httperrors.Abort(c, http.StatusNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"categories": cats,
	})
}

// ListQuestions handles GET /questions?page=N.
func (h *HTTPHandler) ListQuestions(c *gin.Context) {
	ctx := c.Request.Context()
	page, err := h.svc.ListQuestions(ctx, ParsePage(c.Query("page")))
	if err != nil {
		httperrors.AbortWithError(c, http.StatusInternalServerError, err)
		return
	}
	cats, err := h.svc.Categories(ctx)
	if err != nil {
		httperrors.AbortWithError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":             true,
		"questions":           page.Questions,
		"total_questions":     page.Total,
		"categories":          cats,
		"current_category":    "all",
		"questions_displayed": len(page.Questions),
	})
}

// ListCategoryQuestions handles GET /categories/:id/questions?page=N.
func (h *HTTPHandler) ListCategoryQuestions(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		httperrors.Abort(c, http.StatusNotFound)
		return
	}
	cat, page, err := h.svc.ListByCategory(c.Request.Context(), id, ParsePage(c.Query("page")))
	if err != nil {
		h.abortLookup(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"questions":        page.Questions,
		"current_category": cat.Type,
		"total_questions":  page.Total,
	})
}

// DeleteQuestion handles DELETE /questions/:id.
func (h *HTTPHandler) DeleteQuestion(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		httperrors.Abort(c, http.StatusNotFound)
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		h.abortLookup(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

type createOrSearchRequest struct {
	SearchTerm *string  `json:"searchTerm"`
	Question   *string  `json:"question"`
	Answer     *string  `json:"answer"`
	Category   *FlexInt `json:"category"`
	Difficulty *FlexInt `json:"difficulty"`
}

var errMissingFields = errors.New("question, answer, category and difficulty are required")

// CreateOrSearch handles POST /questions. A non-empty searchTerm runs a
// search; any other body creates a question. Every failure is a 400.
func (h *HTTPHandler) CreateOrSearch(c *gin.Context) {
	var req createOrSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debug().Err(err).Msg("rejecting malformed question body")
		httperrors.AbortWithError(c, http.StatusBadRequest, err)
		return
	}

	if req.SearchTerm != nil && *req.SearchTerm != "" {
		h.search(c, *req.SearchTerm)
		return
	}

	if req.Question == nil || req.Answer == nil || req.Category == nil || req.Difficulty == nil {
		h.logger.Debug().Msg("rejecting question with missing fields")
		httperrors.AbortWithError(c, http.StatusBadRequest, errMissingFields)
		return
	}
	_, err := h.svc.Create(c.Request.Context(), NewQuestion{
		Question:   *req.Question,
		Answer:     *req.Answer,
		Category:   int32(*req.Category),
		Difficulty: int32(*req.Difficulty),
	})
	if err != nil {
		httperrors.AbortWithError(c, http.StatusBadRequest, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *HTTPHandler) search(c *gin.Context, term string) {
	res, err := h.svc.Search(c.Request.Context(), term, ParsePage(c.Query("page")))
	if err != nil {
		h.logger.Error().Err(err).Str("term", term).Msg("search failed")
		httperrors.AbortWithError(c, http.StatusBadRequest, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"questions":        res.Questions,
		"total_questions":  res.Total,
		"current_category": res.CurrentCategory,
	})
}

func (h *HTTPHandler) abortLookup(c *gin.Context, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		httperrors.Abort(c, http.StatusNotFound)
		return
	}
	h.logger.Error().Err(err).Str("path", c.FullPath()).Msg("storage lookup failed")
	httperrors.AbortWithError(c, http.StatusInternalServerError, err)
}

// pathID parses the :id segment. Values that are not a 32-bit integer
// behave like an unmatched route.
func pathID(c *gin.Context) (int32, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return int32(id), true
}
