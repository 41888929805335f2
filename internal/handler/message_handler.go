package handler

import (
	"net/http"

	"collably/internal/middleware"
	"collably/internal/models"
	"collably/internal/repository"
	"collably/internal/service"
	"collably/internal/ws"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	messages  *repository.MessageRepository
	collabSvc *service.CollaborationService
	hub       *ws.CollabHub
}

func NewMessageHandler(messages *repository.MessageRepository, collabSvc *service.CollaborationService, hub *ws.CollabHub) *MessageHandler {
	return &MessageHandler{messages: messages, collabSvc: collabSvc, hub: hub}
}

// Send persists the message and pushes it to any live sockets in the room.
func (h *MessageHandler) Send(c *gin.Context) {
	collabID, ok := paramUint(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid collaboration id"})
		return
	}
	var req struct {
		Body          string `json:"body" binding:"required"`
		AttachmentURL string `json:"attachment_url"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	collab, err := h.collabSvc.GetByID(collabID)
	if err != nil {
		respondError(c, err)
		return
	}
	userID := middleware.GetUserID(c)
	if !participant(collab, userID, middleware.GetRole(c)) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}
	msg := &models.CollaborationMessage{
		CollaborationID: collabID,
		SenderID:        userID,
		Body:            req.Body,
		AttachmentURL:   req.AttachmentURL,
	}
	if err := h.messages.Create(msg); err != nil {
		respondError(c, err)
		return
	}
	room := h.hub.GetOrCreateRoom(collab.ID, collab.BrandID, collab.InfluencerID)
	room.Broadcast(nil, gin.H{"type": "message", "message": msg})
	c.JSON(http.StatusCreated, gin.H{"message": msg})
}

func (h *MessageHandler) List(c *gin.Context) {
	collabID, ok := paramUint(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid collaboration id"})
		return
	}
	collab, err := h.collabSvc.GetByID(collabID)
	if err != nil {
		respondError(c, err)
		return
	}
	if !participant(collab, middleware.GetUserID(c), middleware.GetRole(c)) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}
	limit := queryInt(c, "limit", 100)
	if limit > 500 {
		limit = 500
	}
	offset := queryInt(c, "offset", 0)
	list, err := h.messages.ListByCollaboration(collabID, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": list})
}
