package services

import (
	"context"
	"fmt"

	"github.com/AnshRaj112/courtmatch-backend/internal/database"
	"github.com/AnshRaj112/courtmatch-backend/internal/models"
)

// SeedChats are inserted the first time the chat list is read from an empty table.
var SeedChats = []models.Chat{
	{Name: "Doubles Crew", LastMessage: "Same time Thursday?", Timestamp: "3m ago"},
	{Name: "League Captain", LastMessage: "Roster locked in.", Timestamp: "1h ago"},
}

// WelcomeMessage is attached to every chat in place of real history.
var WelcomeMessage = models.ChatMessage{From: "them", Text: "Welcome to the chat!"}

// EnsureSeedChats inserts SeedChats when the chats table is empty. The
// emptiness check and the insert are one statement, so concurrent callers
// cannot seed twice. It reports whether rows were inserted.
func EnsureSeedChats(ctx context.Context, s *database.Session) (bool, error) {
	a, b := SeedChats[0], SeedChats[1]
	res, err := s.ExecContext(ctx, `
		INSERT INTO chats (name, last_message, "timestamp")
		SELECT name, last_message, ts FROM (
			SELECT CAST(? AS TEXT) AS name, CAST(? AS TEXT) AS last_message, CAST(? AS TEXT) AS ts, 1 AS ord
			UNION ALL
			SELECT CAST(? AS TEXT), CAST(? AS TEXT), CAST(? AS TEXT), 2
		) AS seed
		WHERE NOT EXISTS (SELECT 1 FROM chats)
		ORDER BY ord
	`, a.Name, a.LastMessage, a.Timestamp, b.Name, b.LastMessage, b.Timestamp)
	if err != nil {
		return false, fmt.Errorf("seed chats: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("seed chats: %w", err)
	}
	return n > 0, nil
}

// ListChats returns every chat in creation order.
func ListChats(ctx context.Context, s *database.Session) ([]models.Chat, error) {
	rows, err := s.QueryContext(ctx, `
		SELECT id, COALESCE(name, ''), COALESCE(last_message, ''), COALESCE("timestamp", '')
		FROM chats
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("list chats: %w", err)
	}
	defer rows.Close()

	chats := make([]models.Chat, 0)
	for rows.Next() {
		var c models.Chat
		if err := rows.Scan(&c.ID, &c.Name, &c.LastMessage, &c.Timestamp); err != nil {
			return nil, fmt.Errorf("scan chat: %w", err)
		}
		chats = append(chats, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list chats: %w", err)
	}
	return chats, nil
}

// ChatResponses decorates each chat with the placeholder welcome message.
func ChatResponses(chats []models.Chat) []models.ChatResponse {
	out := make([]models.ChatResponse, 0, len(chats))
	for _, c := range chats {
		out = append(out, models.ChatResponse{
			ID:          c.ID,
			Name:        c.Name,
			LastMessage: c.LastMessage,
			Timestamp:   c.Timestamp,
			Messages:    []models.ChatMessage{WelcomeMessage},
		})
	}
	return out
}
