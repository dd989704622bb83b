package ws

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"wchub/internal/delivery/http/middleware"
	"wchub/internal/domain/entity"
	mockUC "wchub/internal/mocks/usecase"
	"wchub/internal/usecase"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type handlerFixtures struct {
	handler   *Handler
	hub       *Hub
	messageUC *mockUC.MockMessageUsecase
}

func createTestHandler(t *testing.T) *handlerFixtures {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	hub := NewHub(logger)
	messageUC := mockUC.NewMockMessageUsecase(t)

	return &handlerFixtures{
		handler:   NewHandler(hub, messageUC, logger),
		hub:       hub,
		messageUC: messageUC,
	}
}

// wsTestServer serves the handler as an authenticated user, the way the
// auth middleware would after validating a token.
func wsTestServer(t *testing.T, h *Handler, userID int64) string {
	t.Helper()

	e := echo.New()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c := e.NewContext(r, w)
		c.Set(middleware.ContextKeyUserID, userID)
		_ = h.Handle(c)
	}))
	t.Cleanup(server.Close)

	return "ws" + strings.TrimPrefix(server.URL, "http")
}

func TestHandler_RelaysMessageToReceiver(t *testing.T) {
	fx := createTestHandler(t)

	senderURL := wsTestServer(t, fx.handler, 3)
	receiverURL := wsTestServer(t, fx.handler, 7)

	sender, _, err := websocket.DefaultDialer.Dial(senderURL, nil)
	require.NoError(t, err)
	defer sender.Close()

	receiver, _, err := websocket.DefaultDialer.Dial(receiverURL, nil)
	require.NoError(t, err)
	defer receiver.Close()

	require.Eventually(t, func() bool {
		return fx.hub.ConnectionCount(3) == 1 && fx.hub.ConnectionCount(7) == 1
	}, time.Second, 10*time.Millisecond)

	fx.messageUC.EXPECT().
		SendMessage(mock.Anything, int64(3), mock.AnythingOfType("*usecase.SendMessageInput")).
		RunAndReturn(func(ctx context.Context, senderID int64, input *usecase.SendMessageInput) (*entity.Message, error) {
			assert.Equal(t, int64(7), input.ReceiverID)
			assert.Equal(t, "hello", input.Text)

			return &entity.Message{ID: 100, ConversationID: 11, SenderID: senderID, ReceiverID: 7, Text: input.Text}, nil
		})

	require.NoError(t, sender.WriteJSON(inboundEnvelope{Type: messageTypeSend, ReceiverID: 7, Text: "hello"}))

	require.NoError(t, receiver.SetReadDeadline(time.Now().Add(time.Second)))

	var envelope outboundEnvelope
	require.NoError(t, receiver.ReadJSON(&envelope))
	assert.Equal(t, messageTypeReceive, envelope.Type)
	require.NotNil(t, envelope.Message)
	assert.Equal(t, int64(100), envelope.Message.ID)
	assert.Equal(t, "hello", envelope.Message.Text)
}

func TestHandler_PersistenceFailureIsDroppedWithoutAck(t *testing.T) {
	fx := createTestHandler(t)

	wsURL := wsTestServer(t, fx.handler, 3)
	sender, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer sender.Close()

	require.Eventually(t, func() bool {
		return fx.hub.ConnectionCount(3) == 1
	}, time.Second, 10*time.Millisecond)

	fx.messageUC.EXPECT().
		SendMessage(mock.Anything, int64(3), mock.AnythingOfType("*usecase.SendMessageInput")).
		Return(nil, assert.AnError)

	require.NoError(t, sender.WriteJSON(inboundEnvelope{Type: messageTypeSend, ReceiverID: 7, Text: "hello"}))

	// Frames are processed in order, so follow with a malformed payload.
	// The first frame the sender reads back must be the malformed-payload
	// error, proving the failed send produced no acknowledgement.
	require.NoError(t, sender.WriteMessage(websocket.TextMessage, []byte("{")))

	require.NoError(t, sender.SetReadDeadline(time.Now().Add(time.Second)))

	var envelope outboundEnvelope
	require.NoError(t, sender.ReadJSON(&envelope))
	assert.Equal(t, "error", envelope.Type)
	assert.Equal(t, "invalid message payload", envelope.Error)
	assert.Nil(t, envelope.Message)
}

func TestHandler_IgnoresUnknownMessageTypes(t *testing.T) {
	fx := createTestHandler(t)

	wsURL := wsTestServer(t, fx.handler, 3)
	sender, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer sender.Close()

	require.Eventually(t, func() bool {
		return fx.hub.ConnectionCount(3) == 1
	}, time.Second, 10*time.Millisecond)

	require.NoError(t, sender.WriteJSON(inboundEnvelope{Type: "typing", ReceiverID: 7}))

	// The usecase mock has no expectations; a SendMessage call would fail
	// the test. Sequence a malformed frame to confirm the unknown type was
	// consumed silently.
	require.NoError(t, sender.WriteMessage(websocket.TextMessage, []byte("{")))

	require.NoError(t, sender.SetReadDeadline(time.Now().Add(time.Second)))

	var envelope outboundEnvelope
	require.NoError(t, sender.ReadJSON(&envelope))
	assert.Equal(t, "error", envelope.Type)
}
