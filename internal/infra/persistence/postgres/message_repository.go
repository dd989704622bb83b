package postgres

import (
	"context"

	"wchub/internal/domain/entity"
	domainerrors "wchub/internal/domain/errors"
	"wchub/internal/domain/repository"
	"wchub/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// conversationRepository implements the repository.ConversationRepository interface.
type conversationRepository struct {
	db *gorm.DB
}

// NewConversationRepository is the constructor for conversationRepository.
func NewConversationRepository(db *gorm.DB) repository.ConversationRepository {
	return &conversationRepository{db: db}
}

// FindOrCreate resolves the conversation for a canonical participants key.
// The insert is on-conflict-do-nothing against the unique participants
// index, then the row is re-read, so two concurrent first messages for the
// same pair converge on a single conversation.
func (repo *conversationRepository) FindOrCreate(ctx context.Context, participants string) (*entity.Conversation, error) {
	conversationM := &model.ConversationModel{Participants: participants}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "participants"}},
			DoNothing: true,
		}).
		Create(conversationM).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create conversation")
	}

	// On conflict the insert assigns no ID; read back whichever row won.
	if conversationM.ID == 0 {
		if err := repo.db.WithContext(ctx).
			Where("participants = ?", participants).
			First(conversationM).Error; err != nil {
			return nil, errors.Wrap(err, "failed to load conversation after upsert")
		}
	}

	return toConversationDomain(conversationM), nil
}

// messageRepository implements the repository.MessageRepository interface.
type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository is the constructor for messageRepository.
func NewMessageRepository(db *gorm.DB) repository.MessageRepository {
	return &messageRepository{db: db}
}

// Create persists a new message row.
func (repo *messageRepository) Create(ctx context.Context, message *entity.Message) error {
	messageM := fromMessageDomain(message)

	if err := repo.db.WithContext(ctx).Create(messageM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("message endpoint does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create message")
	}

	message.ID = messageM.ID
	message.CreatedAt = messageM.CreatedAt

	return nil
}

// FindInbox retrieves all messages addressed to the given user, newest first.
func (repo *messageRepository) FindInbox(ctx context.Context, receiverID int64) ([]*entity.Message, error) {
	var messageModels []*model.MessageModel

	if err := repo.db.WithContext(ctx).
		Where("receiver_id = ?", receiverID).
		Order("created_at DESC").
		Find(&messageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load inbox")
	}

	messages := make([]*entity.Message, 0, len(messageModels))
	for _, messageM := range messageModels {
		messages = append(messages, toMessageDomain(messageM))
	}

	return messages, nil
}

func toConversationDomain(conversationM *model.ConversationModel) *entity.Conversation {
	return &entity.Conversation{
		ID:           conversationM.ID,
		Participants: conversationM.Participants,
		CreatedAt:    conversationM.CreatedAt,
	}
}

func toMessageDomain(messageM *model.MessageModel) *entity.Message {
	return &entity.Message{
		ID:             messageM.ID,
		ConversationID: messageM.ConversationID,
		SenderID:       messageM.SenderID,
		ReceiverID:     messageM.ReceiverID,
		Text:           messageM.Text,
		CreatedAt:      messageM.CreatedAt,
	}
}

func fromMessageDomain(message *entity.Message) *model.MessageModel {
	return &model.MessageModel{
		ID:             message.ID,
		ConversationID: message.ConversationID,
		SenderID:       message.SenderID,
		ReceiverID:     message.ReceiverID,
		Text:           message.Text,
	}
}
