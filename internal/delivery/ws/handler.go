package ws

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"wchub/internal/delivery/http/middleware"
	"wchub/internal/domain/entity"
	"wchub/internal/usecase"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

const (
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096

	messageTypeSend    = "send-message"
	messageTypeReceive = "receive-message"
)

// inboundEnvelope is what clients send over the socket.
type inboundEnvelope struct {
	Type       string `json:"type"`
	ReceiverID int64  `json:"receiverId"`
	Text       string `json:"text"`
}

// outboundEnvelope is what the relay delivers to receiver connections.
type outboundEnvelope struct {
	Type    string          `json:"type"`
	Message *entity.Message `json:"message,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// Handler upgrades authenticated requests to WebSocket connections and
// relays direct messages between users.
type Handler struct {
	hub       *Hub
	messageUC usecase.MessageUsecase
	upgrader  websocket.Upgrader
	logger    *slog.Logger
}

// NewHandler is the constructor for Handler, injected by Fx.
func NewHandler(hub *Hub, messageUC usecase.MessageUsecase, logger *slog.Logger) *Handler {
	return &Handler{
		hub:       hub,
		messageUC: messageUC,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger: logger,
	}
}

// Handle runs the connection lifecycle. The channel identity comes from
// the verified token claims set by the auth middleware, never from
// client input.
func (h *Handler) Handle(c echo.Context) error {
	userID := middleware.UserID(c)

	socket, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		h.logger.Warn("WebSocket upgrade failed", slog.Any("error", err))

		return nil
	}

	conn := NewConn(socket)
	h.hub.Register(userID, conn)
	h.logger.Info("WebSocket connected", slog.Int64("userID", userID))

	defer func() {
		h.hub.Unregister(userID, conn)
		conn.Close()
		h.logger.Info("WebSocket disconnected", slog.Int64("userID", userID))
	}()

	socket.SetReadLimit(maxMessageSize)
	if err := socket.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		return nil
	}
	socket.SetPongHandler(func(string) error {
		return socket.SetReadDeadline(time.Now().Add(pongWait))
	})

	stopPing := make(chan struct{})
	defer close(stopPing)
	go h.pingLoop(conn, stopPing)

	h.readLoop(c, socket, conn, userID)

	return nil
}

func (h *Handler) readLoop(c echo.Context, socket *websocket.Conn, conn *Conn, userID int64) {
	for {
		_, raw, err := socket.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn("WebSocket read failed", slog.Int64("userID", userID), slog.Any("error", err))
			}

			return
		}

		var envelope inboundEnvelope
		if err := json.Unmarshal(raw, &envelope); err != nil {
			h.sendError(conn, "invalid message payload")

			continue
		}

		if envelope.Type != messageTypeSend {
			continue
		}

		message, err := h.messageUC.SendMessage(c.Request().Context(), userID, &usecase.SendMessageInput{
			ReceiverID: envelope.ReceiverID,
			Text:       envelope.Text,
		})
		if err != nil {
			// Fire-and-forget: failures are logged and the event dropped,
			// never acknowledged back to the sender.
			h.logger.Warn("Failed to deliver websocket message",
				slog.Int64("senderID", userID), slog.Int64("receiverID", envelope.ReceiverID), slog.Any("error", err))

			continue
		}

		h.hub.SendToUser(message.ReceiverID, outboundEnvelope{
			Type:    messageTypeReceive,
			Message: message,
		})
	}
}

func (h *Handler) pingLoop(conn *Conn, stop <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if err := conn.Ping(); err != nil {
				return
			}
		}
	}
}

func (h *Handler) sendError(conn *Conn, message string) {
	_ = conn.WriteJSON(outboundEnvelope{Type: "error", Error: message})
}
