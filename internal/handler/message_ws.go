package handler

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"collably/config"
	"collably/internal/auth"
	"collably/internal/models"
	"collably/internal/repository"
	"collably/internal/service"
	"collably/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type MessageWSHandler struct {
	cfg       *config.Config
	collabSvc *service.CollaborationService
	messages  *repository.MessageRepository
	hub       *ws.CollabHub
}

func NewMessageWSHandler(cfg *config.Config, collabSvc *service.CollaborationService, messages *repository.MessageRepository, hub *ws.CollabHub) *MessageWSHandler {
	return &MessageWSHandler{cfg: cfg, collabSvc: collabSvc, messages: messages, hub: hub}
}

type inboundMessage struct {
	Body          string `json:"body"`
	AttachmentURL string `json:"attachment_url"`
}

// Serve upgrades the connection for live collaboration messaging. Browsers
// cannot set an Authorization header on a WebSocket handshake, so the token
// rides the query string.
func (h *MessageWSHandler) Serve(c *gin.Context) {
	collabID, ok := paramUint(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid collaboration id"})
		return
	}
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}
	claims, err := auth.ParseAccessToken(&h.cfg.JWT, token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}
	collab, err := h.collabSvc.GetByID(collabID)
	if err != nil {
		respondError(c, err)
		return
	}
	if !participant(collab, claims.UserID, claims.Role) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[WS] upgrade failed: %v", err)
		return
	}

	client := &ws.Client{
		UserID: claims.UserID,
		Role:   claims.Role,
		Send:   make(chan []byte, 64),
	}
	room := h.hub.GetOrCreateRoom(collab.ID, collab.BrandID, collab.InfluencerID)
	room.Join(client)

	go client.WritePump(conn)
	h.readPump(conn, client, room, collabID)
}

func (h *MessageWSHandler) readPump(conn *websocket.Conn, client *ws.Client, room *ws.Room, collabID uint) {
	defer func() {
		client.Close()
		conn.Close()
		if room.ClientCount() == 0 {
			h.hub.RemoveRoom(collabID)
		}
	}()
	conn.SetReadLimit(64 << 10)
	conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var in inboundMessage
		if err := json.Unmarshal(data, &in); err != nil || in.Body == "" {
			continue
		}
		msg := &models.CollaborationMessage{
			CollaborationID: collabID,
			SenderID:        client.UserID,
			Body:            in.Body,
			AttachmentURL:   in.AttachmentURL,
		}
		if err := h.messages.Create(msg); err != nil {
			log.Printf("[WS] persist message failed: %v", err)
			continue
		}
		room.Broadcast(nil, gin.H{"type": "message", "message": msg})
	}
}
