package models

// Post is a feed entry. Username is the author's display name, not a reference
// to users, and CreatedAt is display text ("Just now") rather than a timestamp.
type Post struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Content   string `json:"content"`
	Likes     int    `json:"likes"`
	CreatedAt string `json:"created_at"`
}

// PostResponse is the wire shape of a post in the feed.
type PostResponse struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Content   string `json:"content"`
	Likes     int    `json:"likes"`
	CreatedAt string `json:"createdAt"`
}

// Response maps the stored post to its wire shape.
func (p Post) Response() PostResponse {
	return PostResponse{
		ID:        p.ID,
		Username:  p.Username,
		Content:   p.Content,
		Likes:     p.Likes,
		CreatedAt: p.CreatedAt,
	}
}
