// Package memory gives the advisor long-term recall over past exchanges,
// backed by a persistent local vector store.
package memory

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/philippgille/chromem-go"

	"github.com/seleste/nanosphere/pkg/logger"
)

// Snippet is one recalled exchange with its similarity score.
type Snippet struct {
	ID        string  `json:"id"`
	Content   string  `json:"content"`
	Score     float32 `json:"score"`
	Timestamp string  `json:"timestamp"`
}

// Embedder produces embedding vectors. Satisfied by the gateway.
type Embedder interface {
	EmbedText(ctx context.Context, text string) ([]float32, error)
}

// EmbeddingFunc adapts an Embedder to the vector store's callback shape.
func EmbeddingFunc(e Embedder) chromem.EmbeddingFunc {
	return func(ctx context.Context, text string) ([]float32, error) {
		return e.EmbedText(ctx, text)
	}
}

// RecallStore indexes advisor exchanges at workspace/memory/vectors/.
type RecallStore struct {
	db        *chromem.DB
	exchanges *chromem.Collection
}

// NewRecallStore opens or creates the persistent store.
func NewRecallStore(workspace string, embeddingFn chromem.EmbeddingFunc) (*RecallStore, error) {
	dbPath := filepath.Join(workspace, "memory", "vectors")
	if err := os.MkdirAll(dbPath, 0755); err != nil {
		return nil, fmt.Errorf("create memory dir: %w", err)
	}

	db, err := chromem.NewPersistentDB(dbPath, false)
	if err != nil {
		return nil, fmt.Errorf("open vector db: %w", err)
	}
	exchanges, err := db.GetOrCreateCollection("exchanges", nil, embeddingFn)
	if err != nil {
		return nil, fmt.Errorf("create exchanges collection: %w", err)
	}

	logger.InfoCF("memory", "Recall store initialized", map[string]interface{}{
		"path":  dbPath,
		"count": exchanges.Count(),
	})
	return &RecallStore{db: db, exchanges: exchanges}, nil
}

// IndexExchange embeds one question/answer pair. Indexing failures are logged
// and swallowed so recall never blocks the chat surface.
func (rs *RecallStore) IndexExchange(ctx context.Context, sessionKey, question, answer string) {
	ts := time.Now()
	content := fmt.Sprintf("Student: %s\nAdvisor: %s", question, answer)
	// Rune-safe truncation keeps embeddings meaningful on long lectures.
	if runes := []rune(content); len(runes) > 8000 {
		content = string(runes[:8000])
	}

	doc := chromem.Document{
		ID:      fmt.Sprintf("%s:%d", sessionKey, ts.UnixNano()),
		Content: content,
		Metadata: map[string]string{
			"session_key": sessionKey,
			"timestamp":   ts.Format(time.RFC3339),
		},
	}
	if err := rs.exchanges.AddDocument(ctx, doc); err != nil {
		logger.ErrorCF("memory", "Failed to index exchange", map[string]interface{}{
			"error":       err.Error(),
			"session_key": sessionKey,
		})
	}
}

// Search returns the most similar past exchanges, best first.
func (rs *RecallStore) Search(ctx context.Context, query string, limit int) ([]Snippet, error) {
	count := rs.exchanges.Count()
	if count == 0 {
		return nil, nil
	}
	if limit > count {
		limit = count
	}

	results, err := rs.exchanges.Query(ctx, query, limit, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("search exchanges: %w", err)
	}

	out := make([]Snippet, 0, len(results))
	for _, r := range results {
		out = append(out, Snippet{
			ID:        r.ID,
			Content:   r.Content,
			Score:     r.Similarity,
			Timestamp: r.Metadata["timestamp"],
		})
	}
	return out, nil
}
