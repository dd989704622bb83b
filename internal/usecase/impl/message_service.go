package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "wchub/internal/delivery/context"
	"wchub/internal/domain/entity"
	domainerrors "wchub/internal/domain/errors"
	"wchub/internal/domain/repository"
	"wchub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// messageService implements the MessageUsecase interface.
type messageService struct {
	txManager   repository.TransactionManager
	userRepo    repository.UserRepository
	messageRepo repository.MessageRepository
	logger      *slog.Logger
}

// MessageServiceParams holds dependencies for messageService, injected by Fx.
type MessageServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	UserRepo    repository.UserRepository
	MessageRepo repository.MessageRepository
	Logger      *slog.Logger
}

// NewMessageService is the constructor for messageService.
func NewMessageService(params MessageServiceParams) usecase.MessageUsecase {
	return &messageService{
		txManager:   params.TxManager,
		userRepo:    params.UserRepo,
		messageRepo: params.MessageRepo,
		logger:      params.Logger,
	}
}

func (srv *messageService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SendMessage resolves the conversation for the sender and receiver pair,
// creating it on first contact, and appends the message. Conversation
// resolution and the message insert run in one transaction so a failed
// insert never leaves behind an observable half-sent state.
func (srv *messageService) SendMessage(ctx context.Context, senderID int64, input *usecase.SendMessageInput) (*entity.Message, error) {
	if input == nil || strings.TrimSpace(input.Text) == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("message text is required")
	}
	if input.ReceiverID <= 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("receiverId is required")
	}
	if input.ReceiverID == senderID {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("cannot message yourself")
	}

	if _, err := srv.userRepo.FindByID(ctx, input.ReceiverID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("receiver does not exist")
		}

		return nil, errors.Wrap(err, "failed to check receiver")
	}

	message := &entity.Message{
		SenderID:   senderID,
		ReceiverID: input.ReceiverID,
		Text:       input.Text,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		key := entity.ConversationKey(senderID, input.ReceiverID)

		conversation, err := repoFactory.ConversationRepo().FindOrCreate(ctx, key)
		if err != nil {
			return errors.Wrap(err, "failed to resolve conversation")
		}

		message.ConversationID = conversation.ID

		return repoFactory.MessageRepo().Create(ctx, message)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to send message",
			slog.Int64("senderID", senderID), slog.Int64("receiverID", input.ReceiverID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Message sent",
		slog.Int64("messageID", message.ID), slog.Int64("conversationID", message.ConversationID))

	return message, nil
}

// Inbox returns the messages addressed to the user, newest first.
func (srv *messageService) Inbox(ctx context.Context, userID int64) ([]*entity.Message, error) {
	messages, err := srv.messageRepo.FindInbox(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load inbox")
	}

	return messages, nil
}
