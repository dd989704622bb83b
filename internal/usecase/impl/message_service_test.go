package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"wchub/internal/domain/entity"
	domainerrors "wchub/internal/domain/errors"
	"wchub/internal/domain/repository"
	mockRepo "wchub/internal/mocks/repository"
	"wchub/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// messageServiceFixtures holds all test dependencies for message service tests.
type messageServiceFixtures struct {
	service     usecase.MessageUsecase
	txManager   *mockRepo.MockTransactionManager
	userRepo    *mockRepo.MockUserRepository
	messageRepo *mockRepo.MockMessageRepository
}

func createTestMessageService(t *testing.T) messageServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	messageRepo := mockRepo.NewMockMessageRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewMessageService(MessageServiceParams{
		TxManager:   txManager,
		UserRepo:    userRepo,
		MessageRepo: messageRepo,
		Logger:      logger,
	})

	return messageServiceFixtures{
		service:     service,
		txManager:   txManager,
		userRepo:    userRepo,
		messageRepo: messageRepo,
	}
}

func TestMessageService_SendMessage_Success(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	input := &usecase.SendMessageInput{ReceiverID: 3, Text: "hello"}

	fx.userRepo.EXPECT().FindByID(ctx, int64(3)).Return(&entity.User{ID: 3}, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockConversationRepo := mockRepo.NewMockConversationRepository(t)
			mockMessageRepo := mockRepo.NewMockMessageRepository(t)

			mockFactory.EXPECT().ConversationRepo().Return(mockConversationRepo)
			mockFactory.EXPECT().MessageRepo().Return(mockMessageRepo)

			// Sender 7 and receiver 3 share one conversation regardless of
			// who wrote first.
			mockConversationRepo.EXPECT().
				FindOrCreate(ctx, "3_7").
				Return(&entity.Conversation{ID: 11, Participants: "3_7"}, nil)

			mockMessageRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Message")).
				Run(func(ctx context.Context, message *entity.Message) {
					message.ID = 100
				}).
				Return(nil)

			return fn(mockFactory)
		})

	message, err := fx.service.SendMessage(ctx, 7, input)

	require.NoError(t, err)
	assert.Equal(t, int64(100), message.ID)
	assert.Equal(t, int64(11), message.ConversationID)
	assert.Equal(t, int64(7), message.SenderID)
	assert.Equal(t, int64(3), message.ReceiverID)
	assert.Equal(t, "hello", message.Text)
}

func TestMessageService_SendMessage_EmptyText(t *testing.T) {
	fx := createTestMessageService(t)

	message, err := fx.service.SendMessage(context.Background(), 7, &usecase.SendMessageInput{
		ReceiverID: 3,
		Text:       "   ",
	})

	assert.Nil(t, message)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestMessageService_SendMessage_SelfMessage(t *testing.T) {
	fx := createTestMessageService(t)

	message, err := fx.service.SendMessage(context.Background(), 7, &usecase.SendMessageInput{
		ReceiverID: 7,
		Text:       "hello me",
	})

	assert.Nil(t, message)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestMessageService_SendMessage_UnknownReceiver(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().FindByID(ctx, int64(99)).Return(nil, repository.ErrUserNotFound)

	message, err := fx.service.SendMessage(ctx, 7, &usecase.SendMessageInput{
		ReceiverID: 99,
		Text:       "hello",
	})

	assert.Nil(t, message)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestMessageService_SendMessage_TransactionFailure(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().FindByID(ctx, int64(3)).Return(&entity.User{ID: 3}, nil)

	txErr := errors.New("connection reset")
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(txErr)

	message, err := fx.service.SendMessage(ctx, 7, &usecase.SendMessageInput{
		ReceiverID: 3,
		Text:       "hello",
	})

	assert.Nil(t, message)
	assert.True(t, errors.Is(err, txErr))
}

func TestMessageService_Inbox(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	expected := []*entity.Message{
		{ID: 2, SenderID: 3, ReceiverID: 7, Text: "newest"},
		{ID: 1, SenderID: 5, ReceiverID: 7, Text: "older"},
	}

	fx.messageRepo.EXPECT().FindInbox(ctx, int64(7)).Return(expected, nil)

	messages, err := fx.service.Inbox(ctx, 7)

	require.NoError(t, err)
	assert.Equal(t, expected, messages)
}
