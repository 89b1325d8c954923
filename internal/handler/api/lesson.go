package api

import (
	"errors"
	"net/http"
	"strings"

	reqdto "lesson-booking/internal/handler/dto/request"
	resdto "lesson-booking/internal/handler/dto/response"
	"lesson-booking/internal/handler/httperr"
	"lesson-booking/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type LessonHandler struct {
	lessonUseCase usecase.LessonUseCase
}

func NewLessonHandler(lessonUseCase usecase.LessonUseCase) *LessonHandler {
	return &LessonHandler{
		lessonUseCase: lessonUseCase,
	}
}

// @Summary List lessons
// @Description List every bookable lesson with its remaining space
// @Tags lessons
// @Produce json
// @Success 200 {array} resdto.LessonResponse
// @Failure 500 {object} httperr.Response
// @Router /lessons [get]
func (h *LessonHandler) List(c *gin.Context) {
	lessons, err := h.lessonUseCase.ListLessons(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromLessons(lessons))
}

// @Summary Get lesson
// @Description Get a single lesson by ID
// @Tags lessons
// @Produce json
// @Param id path string true "Lesson ID"
// @Success 200 {object} resdto.LessonResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /lessons/{id} [get]
func (h *LessonHandler) Get(c *gin.Context) {
	id, err := parseLessonID(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid lesson ID format", nil)
		return
	}

	found, err := h.lessonUseCase.GetLesson(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrLessonNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Lesson not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromLesson(found))
}

// @Summary Update lesson
// @Description Administrative partial update of topic, location, price or space
// @Tags lessons
// @Accept json
// @Produce json
// @Param id path string true "Lesson ID"
// @Param request body reqdto.UpdateLessonRequest true "Fields to update"
// @Success 200 {object} resdto.LessonResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /lessons/{id} [put]
func (h *LessonHandler) Update(c *gin.Context) {
	id, err := parseLessonID(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid lesson ID format", nil)
		return
	}

	var req reqdto.UpdateLessonRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	updated, err := h.lessonUseCase.UpdateLesson(c.Request.Context(), id, req.ToPatch())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid lesson fields", nil)
		case errors.Is(err, usecase.ErrLessonNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Lesson not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromLesson(updated))
}

// Trailing whitespace from copy-pasted URLs is tolerated.
func parseLessonID(c *gin.Context) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(c.Param("id")))
}
