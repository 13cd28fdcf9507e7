package service

import (
	"fmt"
	"strings"
	"testing"

	"mind-journal/internal/domain"
)

func TestBuildAdvicePrompt(t *testing.T) {
	prompt := buildAdvicePrompt(domain.EmotionAnxiety, 0.42, "I can't stop worrying", "user: hi\nassistant: hello")

	for _, want := range []string{
		"feeling Anxiety with 42% intensity",
		`They said: "I can't stop worrying"`,
		"user: hi\nassistant: hello",
		"\nRESPONSE\n",
		"\nRECOMMENDATIONS\n",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestBuildAdvicePromptIntensityTruncates(t *testing.T) {
	prompt := buildAdvicePrompt(domain.EmotionJoy, 0.999, "great", "")
	if !strings.Contains(prompt, "99% intensity") {
		t.Fatalf("expected truncated integer percentage, got:\n%s", prompt)
	}
}

func TestFormatHistoryWindow(t *testing.T) {
	var messages []domain.Message
	for i := 0; i < 8; i++ {
		messages = append(messages, domain.Message{
			Role:    domain.RoleUser,
			Content: fmt.Sprintf("m%d", i),
		})
	}

	history := formatHistory(messages)
	lines := strings.Split(history, "\n")
	if len(lines) != historyWindow {
		t.Fatalf("expected %d lines, got %d", historyWindow, len(lines))
	}
	if lines[0] != "user: m3" || lines[4] != "user: m7" {
		t.Fatalf("window must keep the most recent messages: %v", lines)
	}
}

func TestFormatHistoryEmpty(t *testing.T) {
	if got := formatHistory(nil); got != "" {
		t.Fatalf("expected empty history, got %q", got)
	}
}
