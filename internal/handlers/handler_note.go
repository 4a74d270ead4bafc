package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/bsmapp/battery_shop_backend/internal/apperrors"
	portssvc "github.com/bsmapp/battery_shop_backend/internal/core/ports/services"
	"github.com/bsmapp/battery_shop_backend/internal/dto"
	"github.com/bsmapp/battery_shop_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// noteHandler handles HTTP requests related to sticky notes.
type noteHandler struct {
	noteService portssvc.NoteSvcFacade
}

func newNoteHandler(ns portssvc.NoteSvcFacade) *noteHandler {
	return &noteHandler{noteService: ns}
}

// registerNoteRoutes registers routes related to notes.
func registerNoteRoutes(rg *gin.RouterGroup, noteService portssvc.NoteSvcFacade) {
	h := newNoteHandler(noteService)

	notes := rg.Group("/notes")
	{
		notes.POST("", h.createNote)
		notes.GET("", h.listNotes)
		notes.GET("/:noteID", h.getNoteByID)
		notes.PUT("/:noteID", h.updateNote)
		notes.DELETE("/:noteID", h.deleteNote)
	}
}

// createNote godoc
// @Summary Create a sticky note
// @Tags notes
// @Accept json
// @Produce json
// @Param note body dto.CreateNoteRequest true "Note details"
// @Success 201 {object} dto.NoteResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create note"
// @Security BearerAuth
// @Router /notes [post]
func (h *noteHandler) createNote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	note, err := h.noteService.CreateNote(c.Request.Context(), req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to create note", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create note"})
		return
	}
	c.JSON(http.StatusCreated, dto.ToNoteResponse(note))
}

// getNoteByID godoc
// @Summary Get a note
// @Tags notes
// @Produce json
// @Param noteID path string true "Note ID"
// @Success 200 {object} dto.NoteResponse
// @Failure 404 {object} map[string]string "Note not found"
// @Failure 500 {object} map[string]string "Failed to retrieve note"
// @Security BearerAuth
// @Router /notes/{noteID} [get]
func (h *noteHandler) getNoteByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	noteID := c.Param("noteID")

	note, err := h.noteService.GetNoteByID(c.Request.Context(), noteID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Note not found"})
			return
		}
		logger.Error("Failed to get note", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve note"})
		return
	}
	c.JSON(http.StatusOK, dto.ToNoteResponse(note))
}

// listNotes godoc
// @Summary List notes
// @Description Retrieves notes, pinned first then newest first
// @Tags notes
// @Produce json
// @Param limit query int false "Page size" default(100)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} dto.NoteResponse
// @Failure 500 {object} map[string]string "Failed to list notes"
// @Security BearerAuth
// @Router /notes [get]
func (h *noteHandler) listNotes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListNotesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	notes, err := h.noteService.ListNotes(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list notes", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list notes"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListNoteResponse(notes))
}

// updateNote godoc
// @Summary Update a note
// @Tags notes
// @Accept json
// @Produce json
// @Param noteID path string true "Note ID"
// @Param note body dto.UpdateNoteRequest true "Fields to update"
// @Success 200 {object} dto.NoteResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Note not found"
// @Failure 500 {object} map[string]string "Failed to update note"
// @Security BearerAuth
// @Router /notes/{noteID} [put]
func (h *noteHandler) updateNote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	noteID := c.Param("noteID")

	var req dto.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	note, err := h.noteService.UpdateNote(c.Request.Context(), noteID, req, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Note not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update note", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update note"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToNoteResponse(note))
}

// deleteNote godoc
// @Summary Delete a note
// @Tags notes
// @Produce json
// @Param noteID path string true "Note ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Note not found"
// @Failure 500 {object} map[string]string "Failed to delete note"
// @Security BearerAuth
// @Router /notes/{noteID} [delete]
func (h *noteHandler) deleteNote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	noteID := c.Param("noteID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.noteService.DeleteNote(c.Request.Context(), noteID, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Note not found"})
			return
		}
		logger.Error("Failed to delete note", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete note"})
		return
	}
	c.Status(http.StatusNoContent)
}
