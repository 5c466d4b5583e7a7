package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"greengrow-storefront/internal/client"
	"greengrow-storefront/internal/dto"
)

const chatGreeting = "Hello! I'm your AI gardening assistant. I can help you with gardening questions and product recommendations. What would you like to know?"

type ChatService interface {
	// Reply answers the conversation. When no completion backend is
	// configured, or the backend fails, the scripted responder answers the
	// last user message instead.
	Reply(ctx context.Context, messages []dto.ChatMessage) (string, error)

	Greeting() string
}

type chatServiceImpl struct {
	completions client.CompletionClient // nil when no API key is configured
	log         zerolog.Logger
}

func NewChatService(completions client.CompletionClient, log zerolog.Logger) ChatService {
	return &chatServiceImpl{
		completions: completions,
		log:         log,
	}
}

func (s *chatServiceImpl) Greeting() string {
	return chatGreeting
}

func (s *chatServiceImpl) Reply(ctx context.Context, messages []dto.ChatMessage) (string, error) {
	if len(messages) == 0 {
		return "", ErrMissingChatMessages
	}

	if s.completions != nil {
		converted := make([]client.ChatMessage, len(messages))
		for i, m := range messages {
			converted[i] = client.ChatMessage{Role: m.Role, Content: m.Content}
		}
		reply, err := s.completions.Complete(ctx, converted)
		if err == nil {
			return reply, nil
		}
		s.log.Error().Err(err).Msg("completion backend failed, using scripted reply")
	}

	return scriptedReply(lastUserMessage(messages)), nil
}

func lastUserMessage(messages []dto.ChatMessage) string {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == "user" {
			return messages[i].Content
		}
	}
	return messages[len(messages)-1].Content
}

// scriptedReply is the keyword responder used when no model backend is
// available. Rules mirror the advice topics of the knowledge base.
func scriptedReply(userMessage string) string {
	message := strings.ToLower(userMessage)

	if strings.Contains(message, "fertilizer") || strings.Contains(message, "nutrients") {
		return "For most plants, I recommend using liquid fertilizers every 2-3 weeks during the growing season. Our liquid kelp fertilizer is excellent for providing trace minerals and growth hormones. What type of plants are you growing?"
	}

	if strings.Contains(message, "soil") || strings.Contains(message, "amendments") {
		return "Healthy soil is the foundation of great gardens! Our humic acid concentrate can improve soil structure and nutrient uptake. Are you dealing with clay soil, sandy soil, or looking to improve existing garden beds?"
	}

	if strings.Contains(message, "organic") || strings.Contains(message, "natural") {
		return "All of our products are 100% organic and safe for the environment. We focus on building soil biology naturally. Our compost tea is particularly good for establishing beneficial microorganisms."
	}

	if strings.Contains(message, "plants") || strings.Contains(message, "growing") || strings.Contains(message, "garden") {
		return "What type of plants or crops are you growing? Different plants have different nutritional needs. I can recommend specific products based on whether you're growing vegetables, flowers, herbs, or houseplants."
	}

	if strings.Contains(message, "help") || strings.Contains(message, "problem") {
		return "I'm here to help! You can ask me about plant nutrition, soil health, organic fertilizers, application rates, or any gardening challenges you're facing. What specific issue are you dealing with?"
	}

	return "That's a great question! While I can provide general gardening guidance, for specific product recommendations tailored to your exact situation, I'd suggest consulting with our gardening experts. You can also browse our product catalog to find the right solutions for your garden."
}
