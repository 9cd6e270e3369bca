package services

import (
	"database/sql"
	"errors"
	"math/rand"
	"strings"

	"github.com/google/uuid"
	"github.com/nutrilens/nutrilens-be/internal/apperr"
	"github.com/nutrilens/nutrilens-be/internal/models"
)

// BlogServiceProvider defines the interface for blog services.
type BlogServiceProvider interface {
	GetAll() ([]models.Blog, error)
	Generate() (models.Blog, error)
	Like(id string) (int, error)
	Comment(blogID, author, text string) (models.BlogComment, error)
}

// BlogService stores generated articles and reader reactions.
type BlogService struct {
	db *sql.DB
}

// NewBlogService creates a new BlogService.
func NewBlogService(db *sql.DB) *BlogService {
	return &BlogService{db: db}
}

// GetAll returns every post, newest first, with comments attached.
func (s *BlogService) GetAll() ([]models.Blog, error) {
	rows, err := s.db.Query("SELECT id, title, snippet, content, image_url, likes, created_at FROM blogs ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var blogs []models.Blog
	for rows.Next() {
		var b models.Blog
		if err := rows.Scan(&b.ID, &b.Title, &b.Snippet, &b.Content, &b.ImageURL, &b.Likes, &b.CreatedAt); err != nil {
			return nil, err
		}
		blogs = append(blogs, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range blogs {
		comments, err := s.getComments(blogs[i].ID)
		if err != nil {
			return nil, err
		}
		blogs[i].Comments = comments
	}
	return blogs, nil
}

// Generate publishes the next article from the fixed rotation, with an
// image picked from the article's topic pool.
func (s *BlogService) Generate() (models.Blog, error) {
	var published int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM blogs").Scan(&published); err != nil {
		return models.Blog{}, err
	}

	article := blogArticles[published%len(blogArticles)]
	images := blogImages[article.imageCategory]
	imageURL := images[rand.Intn(len(images))]

	blog := models.Blog{
		ID:       uuid.New().String(),
		Title:    article.title,
		Snippet:  article.snippet,
		Content:  article.content,
		ImageURL: imageURL,
	}

	stmt, err := s.db.Prepare("INSERT INTO blogs(id, title, snippet, content, image_url) VALUES(?, ?, ?, ?, ?)")
	if err != nil {
		return models.Blog{}, err
	}
	defer stmt.Close()

	if _, err := stmt.Exec(blog.ID, blog.Title, blog.Snippet, blog.Content, blog.ImageURL); err != nil {
		return models.Blog{}, err
	}

	return s.getByID(blog.ID)
}

// Like increments a post's like counter and returns the new count.
func (s *BlogService) Like(id string) (int, error) {
	res, err := s.db.Exec("UPDATE blogs SET likes = likes + 1 WHERE id = ?", id)
	if err != nil {
		return 0, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if affected == 0 {
		return 0, apperr.NotFound("blog not found")
	}

	var likes int
	err = s.db.QueryRow("SELECT likes FROM blogs WHERE id = ?", id).Scan(&likes)
	return likes, err
}

// Comment attaches a reader comment to a post.
func (s *BlogService) Comment(blogID, author, text string) (models.BlogComment, error) {
	if strings.TrimSpace(text) == "" {
		return models.BlogComment{}, apperr.Validation("comment text is required")
	}
	if _, err := s.getByID(blogID); err != nil {
		return models.BlogComment{}, err
	}
	if author == "" {
		author = "Anonymous"
	}

	comment := models.BlogComment{
		ID:     uuid.New().String(),
		BlogID: blogID,
		Author: author,
		Text:   strings.TrimSpace(text),
	}

	stmt, err := s.db.Prepare("INSERT INTO blog_comments(id, blog_id, author, text) VALUES(?, ?, ?, ?)")
	if err != nil {
		return models.BlogComment{}, err
	}
	defer stmt.Close()

	if _, err := stmt.Exec(comment.ID, comment.BlogID, comment.Author, comment.Text); err != nil {
		return models.BlogComment{}, err
	}

	row := s.db.QueryRow("SELECT id, blog_id, author, text, created_at FROM blog_comments WHERE id = ?", comment.ID)
	err = row.Scan(&comment.ID, &comment.BlogID, &comment.Author, &comment.Text, &comment.CreatedAt)
	return comment, err
}

func (s *BlogService) getByID(id string) (models.Blog, error) {
	var b models.Blog
	row := s.db.QueryRow("SELECT id, title, snippet, content, image_url, likes, created_at FROM blogs WHERE id = ?", id)
	err := row.Scan(&b.ID, &b.Title, &b.Snippet, &b.Content, &b.ImageURL, &b.Likes, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Blog{}, apperr.NotFound("blog not found")
		}
		return models.Blog{}, err
	}
	return b, nil
}

func (s *BlogService) getComments(blogID string) ([]models.BlogComment, error) {
	rows, err := s.db.Query("SELECT id, blog_id, author, text, created_at FROM blog_comments WHERE blog_id = ? ORDER BY created_at", blogID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := []models.BlogComment{}
	for rows.Next() {
		var c models.BlogComment
		if err := rows.Scan(&c.ID, &c.BlogID, &c.Author, &c.Text, &c.CreatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}
