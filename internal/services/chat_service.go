package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/nutrilens/nutrilens-be/internal/apperr"
	"github.com/rs/zerolog/log"
)

// ChatServiceProvider defines the interface for the food-advice assistant.
type ChatServiceProvider interface {
	Reply(ctx context.Context, message string) (string, error)
}

// ChatService answers food-safety questions. When an upstream assistant
// endpoint is configured it is consulted first; the built-in knowledge
// base is the fallback, so the endpoint keeps working offline.
type ChatService struct {
	upstreamURL string
	apiKey      string
	httpClient  *http.Client
}

// NewChatService creates a new ChatService. upstreamURL may be empty.
func NewChatService(upstreamURL, apiKey string) *ChatService {
	return &ChatService{
		upstreamURL: upstreamURL,
		apiKey:      apiKey,
		httpClient:  http.DefaultClient,
	}
}

const fallbackReply = "I can help with questions about food labels, nutrients, and packaged-food safety. Could you rephrase your question?"

// Reply produces an answer for a user message.
func (s *ChatService) Reply(ctx context.Context, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", apperr.Validation("no message received")
	}

	if s.upstreamURL != "" {
		reply, err := s.askUpstream(ctx, message)
		if err == nil && reply != "" {
			return reply, nil
		}
		if err != nil {
			log.Warn().Err(err).Msg("Assistant upstream failed, falling back to knowledge base")
		}
	}

	if answer := matchKnowledgeBase(message); answer != "" {
		return answer, nil
	}
	return fallbackReply, nil
}

func (s *ChatService) askUpstream(ctx context.Context, message string) (string, error) {
	body, err := json.Marshal(map[string]string{"message": message})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.upstreamURL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("assistant upstream returned status %d", resp.StatusCode)
	}

	var out struct {
		Reply string `json:"reply"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	return out.Reply, nil
}

// matchKnowledgeBase scores each topic by word overlap between the
// user's message and the topic's sample questions, returning the best
// answer above a minimal threshold.
func matchKnowledgeBase(message string) string {
	words := significantWords(message)
	if len(words) == 0 {
		return ""
	}

	bestScore := 0
	bestAnswer := ""
	for _, topic := range foodQATopics {
		for _, question := range topic.questions {
			score := 0
			qLower := strings.ToLower(question)
			for word := range words {
				if strings.Contains(qLower, word) {
					score++
				}
			}
			if score > bestScore {
				bestScore = score
				bestAnswer = topic.answer
			}
		}
	}

	if bestScore < 2 {
		return ""
	}
	return bestAnswer
}

// significantWords drops short filler words so "is", "the", "how" don't
// drive the match.
func significantWords(message string) map[string]bool {
	words := make(map[string]bool)
	for _, w := range strings.Fields(strings.ToLower(message)) {
		w = strings.Trim(w, ".,?!\"'")
		if len(w) > 3 {
			words[w] = true
		}
	}
	return words
}
