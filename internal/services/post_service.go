package services

import (
	"context"
	"fmt"

	"github.com/AnshRaj112/courtmatch-backend/internal/database"
	"github.com/AnshRaj112/courtmatch-backend/internal/models"
)

const (
	// PlaceholderAuthor is credited for every post until real accounts exist.
	PlaceholderAuthor = "You"
	// PlaceholderCreatedAt is the display timestamp of a freshly created post.
	PlaceholderCreatedAt = "Just now"
)

// ListPosts returns every post, newest (highest id) first.
func ListPosts(ctx context.Context, s *database.Session) ([]models.Post, error) {
	rows, err := s.QueryContext(ctx, `
		SELECT id, COALESCE(username, ''), COALESCE(content, ''), COALESCE(likes, 0), COALESCE(created_at, '')
		FROM posts
		ORDER BY id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	posts := make([]models.Post, 0)
	for rows.Next() {
		var p models.Post
		if err := rows.Scan(&p.ID, &p.Username, &p.Content, &p.Likes, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

// CreatePost stores content under the placeholder author and timestamp with no likes.
func CreatePost(ctx context.Context, s *database.Session, content string) (models.Post, error) {
	post := models.Post{
		Username:  PlaceholderAuthor,
		Content:   content,
		Likes:     0,
		CreatedAt: PlaceholderCreatedAt,
	}
	err := s.QueryRowContext(ctx, `
		INSERT INTO posts (username, content, likes, created_at)
		VALUES (?, ?, ?, ?)
		RETURNING id
	`, post.Username, post.Content, post.Likes, post.CreatedAt).Scan(&post.ID)
	if err != nil {
		return models.Post{}, fmt.Errorf("create post: %w", err)
	}
	return post, nil
}
