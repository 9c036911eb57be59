package controllers

import (
	"net/http"

	"github.com/jhoesantos777/apprecuperacaoefoco-sub001/services"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	Chat *services.ChatService
}

func NewChatController(chat *services.ChatService) *ChatController {
	return &ChatController{Chat: chat}
}

type ChatInput struct {
	ConversationID string `json:"conversation_id"`
	Message        string `json:"message" binding:"required"`
}

// POST /user/chat
func (cc *ChatController) Send(c *gin.Context) {
	uid := c.GetUint("userID")

	var input ChatInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply, err := cc.Chat.Send(c.Request.Context(), uid, input.ConversationID, input.Message)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"conversation_id": reply.ConversationID,
		"reply":           reply.Content,
	})
}

// GET /user/chat/:conversationId
func (cc *ChatController) History(c *gin.Context) {
	uid := c.GetUint("userID")

	msgs, err := cc.Chat.History(c.Request.Context(), uid, c.Param("conversationId"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": msgs})
}
