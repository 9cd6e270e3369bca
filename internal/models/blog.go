package models

import "time"

// Blog is a generated label-literacy article.
type Blog struct {
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	Snippet   string        `json:"snippet"`
	Content   string        `json:"content"`
	ImageURL  string        `json:"image"`
	Likes     int           `json:"likes"`
	Comments  []BlogComment `json:"comments"`
	CreatedAt time.Time     `json:"createdAt"`
}

// BlogComment is a reader comment attached to a blog post.
type BlogComment struct {
	ID        string    `json:"id"`
	BlogID    string    `json:"blogId"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}
