package services

import (
	"context"
	"errors"
	"os"

	"github.com/jhoesantos777/apprecuperacaoefoco-sub001/models"

	"github.com/google/uuid"
	openai "github.com/sashabaranov/go-openai"
	"gorm.io/gorm"
)

// ChatService relays messages to the LLM and keeps the transcript. It is a
// thin passthrough: one fixed system message, no tool use, no streaming.
type ChatService struct {
	db     *gorm.DB
	client *openai.Client
	model  string
}

const supportSystemPrompt = "Você é um assistente de apoio em um aplicativo de recuperação de dependência química. " +
	"Responda em português, com acolhimento e sem julgamento. Você não é um profissional de saúde: " +
	"em situações de risco, oriente a pessoa a procurar ajuda profissional ou o CVV (188)."

func NewChatService(db *gorm.DB) *ChatService {
	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = openai.GPT4oMini
	}
	return &ChatService{
		db:     db,
		client: openai.NewClient(os.Getenv("OPENAI_API_KEY")),
		model:  model,
	}
}

// Send persists the user message, asks the LLM with the conversation so
// far, and persists the reply. A blank conversationID starts a new one.
func (s *ChatService) Send(ctx context.Context, userID uint, conversationID, text string) (*models.ChatMessage, error) {
	if userID == 0 {
		return nil, ErrNoSession
	}
	if conversationID == "" {
		conversationID = uuid.NewString()
	}

	var history []models.ChatMessage
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND conversation_id = ?", userID, conversationID).
		Order("created_at ASC").
		Limit(20).
		Find(&history).Error; err != nil {
		return nil, persistErr("load chat history", err)
	}

	msgs := make([]openai.ChatCompletionMessage, 0, len(history)+2)
	msgs = append(msgs, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: supportSystemPrompt,
	})
	for _, m := range history {
		role := openai.ChatMessageRoleUser
		if m.Sender == "assistant" {
			role = openai.ChatMessageRoleAssistant
		}
		msgs = append(msgs, openai.ChatCompletionMessage{Role: role, Content: m.Content})
	}
	msgs = append(msgs, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: text})

	userMsg := models.ChatMessage{
		UserID:         userID,
		ConversationID: conversationID,
		Sender:         "user",
		Content:        text,
	}
	if err := s.db.WithContext(ctx).Create(&userMsg).Error; err != nil {
		return nil, persistErr("save chat message", err)
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    s.model,
		Messages: msgs,
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("empty completion")
	}

	reply := models.ChatMessage{
		UserID:         userID,
		ConversationID: conversationID,
		Sender:         "assistant",
		Content:        resp.Choices[0].Message.Content,
	}
	if err := s.db.WithContext(ctx).Create(&reply).Error; err != nil {
		return nil, persistErr("save chat reply", err)
	}
	return &reply, nil
}

func (s *ChatService) History(ctx context.Context, userID uint, conversationID string) ([]models.ChatMessage, error) {
	var msgs []models.ChatMessage
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND conversation_id = ?", userID, conversationID).
		Order("created_at ASC").
		Find(&msgs).Error
	if err != nil {
		return nil, persistErr("load chat history", err)
	}
	return msgs, nil
}
