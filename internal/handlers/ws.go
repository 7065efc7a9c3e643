package handlers

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"github.com/teamhub-dev/teamhub/internal/types"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

// Hub tracks the websocket clients watching each project so mutations
// can push a refresh signal to every open view.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{clients: make(map[string]map[*websocket.Conn]bool)}
}

func (hub *Hub) register(projectID string, conn *websocket.Conn) {
	hub.mu.Lock()
	defer hub.mu.Unlock()

	if hub.clients[projectID] == nil {
		hub.clients[projectID] = make(map[*websocket.Conn]bool)
	}
	hub.clients[projectID][conn] = true
}

func (hub *Hub) unregister(projectID string, conn *websocket.Conn) {
	hub.mu.Lock()
	defer hub.mu.Unlock()

	if clients, exists := hub.clients[projectID]; exists {
		delete(clients, conn)

		if len(clients) == 0 {
			delete(hub.clients, projectID)
		}
	}
}

// BroadcastRefresh tells every client watching the project to re-read
// its derived state.
func (hub *Hub) BroadcastRefresh(projectID string) {
	hub.mu.RLock()
	clients, exists := hub.clients[projectID]
	if !exists || len(clients) == 0 {
		hub.mu.RUnlock()
		return
	}

	// Copy so the lock is not held while writing to connections
	clientsCopy := make([]*websocket.Conn, 0, len(clients))
	for conn := range clients {
		clientsCopy = append(clientsCopy, conn)
	}
	hub.mu.RUnlock()

	for _, conn := range clientsCopy {
		if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
			logrus.WithError(err).Warn("failed to set write deadline for broadcast")
			continue
		}

		err := conn.WriteJSON(map[string]string{
			"type":       "refresh",
			"message":    "Project data updated",
			"project_id": projectID,
		})

		if err != nil {
			logrus.WithError(err).Warn("failed to broadcast refresh to client")
			hub.unregister(projectID, conn)
			conn.Close()
		}
	}
}

func (h *Handler) WebSocket(c *gin.Context) {
	projectID := c.Param("project_id")

	if projectID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Project ID is required"})
		return
	}

	if _, err := h.Store.GetProject(projectID); err != nil {
		respondStoreError(c, err)
		return
	}

	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			for _, allowed := range types.AllowedOrigins {
				if origin == allowed {
					return true
				}
			}
			return false
		},
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logrus.WithError(err).Error("websocket upgrade failed")
		return
	}

	conn.SetReadLimit(maxMessageSize)
	if err := conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		logrus.WithError(err).Error("failed to set initial read deadline")
		return
	}
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	h.Hub.register(projectID, conn)

	defer func() {
		h.Hub.unregister(projectID, conn)
		conn.Close()

		logrus.WithField("project_id", projectID).Debug("websocket connection closed")
	}()

	if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return
	}

	err = conn.WriteJSON(map[string]string{
		"type":       "connected",
		"message":    "WebSocket connection established",
		"project_id": projectID,
	})

	if err != nil {
		logrus.WithError(err).Error("failed to send welcome message")
		return
	}

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	go func() {
		for range ticker.C {
			if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}()

	for {
		if err := conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			break
		}

		_, _, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logrus.WithError(err).WithField("project_id", projectID).Warn("websocket error")
			}
			break
		}
	}
}
