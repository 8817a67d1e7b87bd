package services

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/AnshRaj112/courtmatch-backend/internal/database"
	"github.com/AnshRaj112/courtmatch-backend/internal/models"
)

func openTempStore(t *testing.T) *database.Store {
	t.Helper()

	store, err := database.Open(context.Background(), database.Options{
		Driver: "sqlite",
		Path:   filepath.Join(t.TempDir(), "courtmatch.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func listPosts(t *testing.T, store *database.Store) []models.Post {
	t.Helper()

	var posts []models.Post
	err := store.WithSession(context.Background(), func(s *database.Session) error {
		var err error
		posts, err = ListPosts(context.Background(), s)
		return err
	})
	require.NoError(t, err)
	return posts
}

func createPost(t *testing.T, store *database.Store, content string) models.Post {
	t.Helper()

	var post models.Post
	err := store.WithSession(context.Background(), func(s *database.Session) error {
		var err error
		post, err = CreatePost(context.Background(), s, content)
		return err
	})
	require.NoError(t, err)
	return post
}

func listChats(t *testing.T, store *database.Store) []models.Chat {
	t.Helper()

	var chats []models.Chat
	err := store.WithSession(context.Background(), func(s *database.Session) error {
		if _, err := EnsureSeedChats(context.Background(), s); err != nil {
			return err
		}
		var err error
		chats, err = ListChats(context.Background(), s)
		return err
	})
	require.NoError(t, err)
	return chats
}

func TestListPostsEmpty(t *testing.T) {
	t.Parallel()

	posts := listPosts(t, openTempStore(t))
	require.NotNil(t, posts)
	require.Empty(t, posts)
}

func TestCreatePostUsesPlaceholders(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	before := listPosts(t, store)

	post := createPost(t, store, "Looking for a doubles partner")
	require.Positive(t, post.ID)

	after := listPosts(t, store)
	require.Len(t, after, len(before)+1)
	require.Equal(t, models.Post{
		ID:        post.ID,
		Username:  "You",
		Content:   "Looking for a doubles partner",
		Likes:     0,
		CreatedAt: "Just now",
	}, after[0])
}

func TestCreatePostAcceptsEmptyContent(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	createPost(t, store, "")

	posts := listPosts(t, store)
	require.Len(t, posts, 1)
	require.Empty(t, posts[0].Content)
}

func TestListPostsNewestFirst(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	faker := gofakeit.New(42)

	var contents []string
	for i := 0; i < 12; i++ {
		content := faker.HackerPhrase()
		contents = append(contents, content)
		createPost(t, store, content)
	}

	posts := listPosts(t, store)
	require.Len(t, posts, len(contents))
	for i := 1; i < len(posts); i++ {
		require.Greater(t, posts[i-1].ID, posts[i].ID)
	}
	for i, p := range posts {
		require.Equal(t, contents[len(contents)-1-i], p.Content)
	}
}

func TestEnsureSeedChatsSeedsOnce(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)

	first := listChats(t, store)
	second := listChats(t, store)
	require.Equal(t, first, second)
	require.Len(t, first, 2)
	for i, c := range first {
		require.Equal(t, SeedChats[i].Name, c.Name)
		require.Equal(t, SeedChats[i].LastMessage, c.LastMessage)
		require.Equal(t, SeedChats[i].Timestamp, c.Timestamp)
	}
	require.Less(t, first[0].ID, first[1].ID)
}

func TestEnsureSeedChatsReportsInsert(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := openTempStore(t)

	var seeded []bool
	for i := 0; i < 2; i++ {
		err := store.WithSession(ctx, func(s *database.Session) error {
			ok, err := EnsureSeedChats(ctx, s)
			seeded = append(seeded, ok)
			return err
		})
		require.NoError(t, err)
	}
	require.Equal(t, []bool{true, false}, seeded)
}

func TestEnsureSeedChatsSkipsNonEmptyTable(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := openTempStore(t)
	err := store.WithSession(ctx, func(s *database.Session) error {
		_, err := s.ExecContext(ctx, `INSERT INTO chats (name, last_message, "timestamp") VALUES (?, ?, ?)`, "Club Night", "See you there", "2d ago")
		return err
	})
	require.NoError(t, err)

	chats := listChats(t, store)
	require.Len(t, chats, 1)
	require.Equal(t, "Club Night", chats[0].Name)
}

func TestChatResponsesAttachWelcomeMessage(t *testing.T) {
	t.Parallel()

	chats := []models.Chat{
		{ID: 1, Name: "Doubles Crew", LastMessage: "Same time Thursday?", Timestamp: "3m ago"},
		{ID: 7, Name: "Anything", LastMessage: "whatever was stored", Timestamp: "yesterday"},
	}
	out := ChatResponses(chats)
	require.Len(t, out, 2)
	for i, c := range out {
		require.Equal(t, chats[i].ID, c.ID)
		require.Equal(t, []models.ChatMessage{{From: "them", Text: "Welcome to the chat!"}}, c.Messages)
	}

	out[0].Messages[0].Text = "mutated"
	require.Equal(t, "Welcome to the chat!", ChatResponses(chats)[0].Messages[0].Text)
}

func TestStartMatchSearchLogsAndAcknowledges(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	ctx := logger.WithContext(context.Background())

	id, resp := StartMatchSearch(ctx, models.MatchSearch{Skill: "3.5", Radius: 10})
	require.NotEmpty(t, id)
	require.Equal(t, models.MatchSearchResponse{Status: "success", Message: "Match search started"}, resp)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "3.5", entry["skill"])
	require.EqualValues(t, 10, entry["radius"])
	require.Equal(t, id, entry["search_id"])
	require.Equal(t, "Searching for skill 3.5 within 10 miles...", entry["message"])
}

func TestAccountSettingsAreFixed(t *testing.T) {
	t.Parallel()

	want := []models.AccountSetting{
		{ID: 1, Setting: "Name", CurrentData: "Rowley Favour"},
		{ID: 2, Setting: "Username", CurrentData: "ThisIsMyFavour"},
		{ID: 3, Setting: "Email", CurrentData: "example@gmail.com"},
	}
	first := AccountSettings()
	first[0].CurrentData = "changed"
	require.Equal(t, want, AccountSettings())
}
