package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fragmented-narratives/internal/models"
)

func (h *Handler) createStory(c *gin.Context) {
	var req createStoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, models.ErrorResponse{Message: "Object and sentence are required"})
		return
	}

	userID, ok := callerID(c)
	if !ok {
		handleServiceError(c, models.ErrTokenInvalid)
		return
	}

	story, err := h.storyService.CreateStory(c.Request.Context(), userID, req.Object, req.Sentence)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	storiesCreatedTotal.Inc()

	c.JSON(http.StatusCreated, gin.H{
		"message": "Story created successfully",
		"storyId": story.ID,
	})
}

func (h *Handler) listAvailableStories(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		handleServiceError(c, models.ErrTokenInvalid)
		return
	}

	stories, err := h.storyService.ListAvailableStories(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	if stories == nil {
		stories = []models.StorySummary{}
	}
	c.JSON(http.StatusOK, gin.H{"stories": stories})
}

func (h *Handler) getStory(c *gin.Context) {
	storyID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		handleServiceError(c, models.ErrStoryNotFound)
		return
	}

	story, contributions, err := h.storyService.GetStory(c.Request.Context(), storyID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	if contributions == nil {
		contributions = []models.Contribution{}
	}
	c.JSON(http.StatusOK, gin.H{
		"story":         story,
		"contributions": contributions,
	})
}

func (h *Handler) listHistory(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		handleServiceError(c, models.ErrTokenInvalid)
		return
	}

	stories, err := h.storyService.ListHistory(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	if stories == nil {
		stories = []models.StorySummary{}
	}
	c.JSON(http.StatusOK, gin.H{"stories": stories})
}

func (h *Handler) listUsers(c *gin.Context) {
	users, err := h.storyService.ListUsers(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	if users == nil {
		users = []models.UserInfo{}
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

func (h *Handler) randomOpeningSentence(c *gin.Context) {
	sentence, err := h.storyService.RandomOpeningSentence(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"sentence": sentence.SentenceText})
}
