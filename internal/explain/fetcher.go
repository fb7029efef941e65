package explain

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker"
)

// Fetcher handles fetching phonetic information for German words
type Fetcher struct {
	apiKey    string
	model     string
	maxTokens int
	client    *openai.Client
	breaker   *gobreaker.CircuitBreaker
}

// NewFetcher creates a new phonetic information fetcher. The circuit
// breaker opens after repeated API failures so that batch runs stop
// early instead of hammering a broken endpoint.
func NewFetcher(apiKey, model string, maxTokens int) *Fetcher {
	settings := gobreaker.Settings{
		Name:    "openai",
		Timeout: 60 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
	}
	return &Fetcher{
		apiKey:    apiKey,
		model:     model,
		maxTokens: maxTokens,
		client:    openai.NewClient(apiKey),
		breaker:   gobreaker.NewCircuitBreaker(settings),
	}
}

// Explain fetches an IPA pronunciation breakdown for a word
func (f *Fetcher) Explain(word string) (string, error) {
	if f.apiKey == "" {
		return "", fmt.Errorf("OpenAI API key not configured")
	}

	result, err := f.breaker.Execute(func() (interface{}, error) {
		return f.fetch(word)
	})
	if err != nil {
		return "", err
	}
	return result.(string), nil
}

func (f *Fetcher) fetch(word string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model: f.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are a German language expert helping language learners understand pronunciation. Provide detailed phonetic information using the International Phonetic Alphabet (IPA). For each IPA symbol used, give concrete examples of how it sounds using familiar English words or sounds when possible.",
			},
			{
				Role: openai.ChatMessageRoleUser,
				Content: fmt.Sprintf(`For the German word '%s':
1. Provide the complete IPA transcription
2. Break down EACH phonetic symbol used in the transcription
3. For EVERY symbol, explain how it's pronounced with examples:
   - If similar to an English sound, give English word examples
   - If not in English, describe tongue/mouth position or compare to similar sounds
   - Include stress marks and explain which syllable is stressed

Example format:
Word: [IPA transcription]
• /m/ - like 'm' in English 'mother'
• /ʏ/ - like 'i' in 'bit' but with rounded lips
• /ˈ/ - stress mark (following syllable is stressed)`, word),
			},
		},
		Temperature: 0.3,
		MaxTokens:   f.maxTokens,
	}

	resp, err := f.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("no response from OpenAI")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
