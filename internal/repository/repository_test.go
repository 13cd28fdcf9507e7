package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"mind-journal/internal/db"
	"mind-journal/internal/domain"
)

func openTestDB(t *testing.T) (*SQLiteConversationRepository, *SQLiteMessageRepository) {
	t.Helper()
	handle, err := db.Open(context.Background(), t.TempDir(), "test.db")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { handle.Close() })
	return NewSQLiteConversationRepository(handle), NewSQLiteMessageRepository(handle)
}

func newConversation() domain.Conversation {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return domain.Conversation{
		ID:          uuid.NewString(),
		Title:       "Chat " + now.Format("2006-01-02 15:04"),
		CreatedAt:   now,
		LastUpdated: now,
	}
}

func TestConversationCreateAndGet(t *testing.T) {
	convRepo, _ := openTestDB(t)
	ctx := context.Background()

	conv := newConversation()
	if err := convRepo.Create(ctx, conv); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := convRepo.GetByID(ctx, conv.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != conv.ID || got.Title != conv.Title {
		t.Fatalf("round-trip mismatch: %+v vs %+v", got, conv)
	}
}

func TestConversationGetNotFound(t *testing.T) {
	convRepo, _ := openTestDB(t)
	if _, err := convRepo.GetByID(context.Background(), uuid.NewString()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestConversationListNewestFirst(t *testing.T) {
	convRepo, _ := openTestDB(t)
	ctx := context.Background()

	base := time.Now().UTC().Add(-time.Hour)
	var ids []string
	for i := 0; i < 3; i++ {
		conv := newConversation()
		conv.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		conv.LastUpdated = conv.CreatedAt
		if err := convRepo.Create(ctx, conv); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
		ids = append(ids, conv.ID)
	}

	out, err := convRepo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("expected 3 conversations, got %d", len(out))
	}
	// El mas nuevo primero.
	if out[0].ID != ids[2] || out[2].ID != ids[0] {
		t.Fatalf("wrong order: %v", []string{out[0].ID, out[1].ID, out[2].ID})
	}
}

func TestMessageRoundTripAndOrdering(t *testing.T) {
	convRepo, msgRepo := openTestDB(t)
	ctx := context.Background()

	conv := newConversation()
	if err := convRepo.Create(ctx, conv); err != nil {
		t.Fatalf("create conversation: %v", err)
	}

	joy := domain.EmotionJoy
	score := 0.7
	base := time.Now().UTC().Truncate(time.Millisecond)
	first := domain.Message{
		ID:             uuid.NewString(),
		ConversationID: conv.ID,
		Role:           domain.RoleUser,
		Content:        "I am so happy today!",
		Sentiment:      &joy,
		SentimentScore: &score,
		CreatedAt:      base,
	}
	hope := domain.EmotionHope
	replyScore := 0.3
	second := domain.Message{
		ID:             uuid.NewString(),
		ConversationID: conv.ID,
		Role:           domain.RoleAssistant,
		Content:        "That is wonderful to hear.",
		Sentiment:      &hope,
		SentimentScore: &replyScore,
		CreatedAt:      base.Add(time.Second),
	}

	for _, m := range []domain.Message{first, second} {
		if err := msgRepo.Create(ctx, m); err != nil {
			t.Fatalf("create message: %v", err)
		}
	}

	out, err := msgRepo.ListByConversationID(ctx, conv.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(out))
	}
	if out[0].ID != first.ID || out[1].ID != second.ID {
		t.Fatalf("messages out of order")
	}
	got := out[0]
	if got.Role != first.Role || got.Content != first.Content {
		t.Fatalf("round-trip mismatch: %+v", got)
	}
	if got.Sentiment == nil || *got.Sentiment != joy {
		t.Fatalf("sentiment lost: %+v", got.Sentiment)
	}
	if got.SentimentScore == nil || *got.SentimentScore != score {
		t.Fatalf("sentiment_score lost: %+v", got.SentimentScore)
	}
}

func TestMessageNullSentiment(t *testing.T) {
	convRepo, msgRepo := openTestDB(t)
	ctx := context.Background()

	conv := newConversation()
	if err := convRepo.Create(ctx, conv); err != nil {
		t.Fatalf("create conversation: %v", err)
	}

	msg := domain.Message{
		ID:             uuid.NewString(),
		ConversationID: conv.ID,
		Role:           domain.RoleUser,
		Content:        "untagged",
		CreatedAt:      time.Now().UTC(),
	}
	if err := msgRepo.Create(ctx, msg); err != nil {
		t.Fatalf("create: %v", err)
	}

	out, err := msgRepo.ListByConversationID(ctx, conv.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if out[0].Sentiment != nil || out[0].SentimentScore != nil {
		t.Fatalf("expected null sentiment pair, got %+v", out[0])
	}
}

func TestDeleteConversationCascades(t *testing.T) {
	convRepo, msgRepo := openTestDB(t)
	ctx := context.Background()

	conv := newConversation()
	if err := convRepo.Create(ctx, conv); err != nil {
		t.Fatalf("create conversation: %v", err)
	}
	for i := 0; i < 2; i++ {
		msg := domain.Message{
			ID:             uuid.NewString(),
			ConversationID: conv.ID,
			Role:           domain.RoleUser,
			Content:        "hola",
			CreatedAt:      time.Now().UTC(),
		}
		if err := msgRepo.Create(ctx, msg); err != nil {
			t.Fatalf("create message: %v", err)
		}
	}

	if err := convRepo.Delete(ctx, conv.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := convRepo.GetByID(ctx, conv.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("conversation should be gone, got %v", err)
	}
	out, err := msgRepo.ListByConversationID(ctx, conv.ID)
	if err != nil {
		t.Fatalf("list after delete: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("orphan messages after delete: %d", len(out))
	}
}

func TestDeleteConversationNotFound(t *testing.T) {
	convRepo, _ := openTestDB(t)
	if err := convRepo.Delete(context.Background(), uuid.NewString()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTouchUpdatesLastUpdatedOnly(t *testing.T) {
	convRepo, _ := openTestDB(t)
	ctx := context.Background()

	conv := newConversation()
	if err := convRepo.Create(ctx, conv); err != nil {
		t.Fatalf("create: %v", err)
	}

	later := conv.LastUpdated.Add(time.Hour)
	if err := convRepo.Touch(ctx, conv.ID, later); err != nil {
		t.Fatalf("touch: %v", err)
	}

	got, err := convRepo.GetByID(ctx, conv.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !got.LastUpdated.Equal(later) {
		t.Fatalf("last_updated=%v, want %v", got.LastUpdated, later)
	}
	if !got.CreatedAt.Equal(conv.CreatedAt) {
		t.Fatalf("created_at must be immutable")
	}
}

func TestRename(t *testing.T) {
	convRepo, _ := openTestDB(t)
	ctx := context.Background()

	conv := newConversation()
	if err := convRepo.Create(ctx, conv); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := convRepo.Rename(ctx, conv.ID, "Renamed"); err != nil {
		t.Fatalf("rename: %v", err)
	}
	got, err := convRepo.GetByID(ctx, conv.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "Renamed" {
		t.Fatalf("title=%q", got.Title)
	}
}
