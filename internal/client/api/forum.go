package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"eduforum/internal/client/authz"
)

// Author identifies who wrote a topic or post.
type Author struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role,omitempty"`
}

type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type Topic struct {
	ID         string    `json:"id"`
	CategoryID string    `json:"category_id"`
	Title      string    `json:"title"`
	Author     Author    `json:"author"`
	CreatedAt  time.Time `json:"created_at"`
}

type Post struct {
	ID        string    `json:"id"`
	TopicID   string    `json:"topic_id"`
	Body      string    `json:"body"`
	Author    Author    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at,omitzero"`
}

// Content adapts a post for the authorization policy.
func (p Post) Content() authz.ContentItem {
	return authz.ContentItem{
		ID:        p.ID,
		Author:    &authz.Author{ID: p.Author.ID, Username: p.Author.Username, Role: p.Author.Role},
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// Content adapts a topic for the authorization policy.
func (t Topic) Content() authz.ContentItem {
	return authz.ContentItem{
		ID:        t.ID,
		Author:    &authz.Author{ID: t.Author.ID, Username: t.Author.Username, Role: t.Author.Role},
		CreatedAt: t.CreatedAt,
	}
}

func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	var out []Category
	if err := c.do(ctx, http.MethodGet, "/api/categories", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateCategory(ctx context.Context, name, description string) (*Category, error) {
	in := struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}{name, description}
	var out Category
	if err := c.do(ctx, http.MethodPost, "/api/categories", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListTopics(ctx context.Context, categoryID string) ([]Topic, error) {
	var out []Topic
	path := fmt.Sprintf("/api/categories/%s/topics", categoryID)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateTopic(ctx context.Context, categoryID, title string) (*Topic, error) {
	in := struct {
		Title string `json:"title"`
	}{title}
	var out Topic
	path := fmt.Sprintf("/api/categories/%s/topics", categoryID)
	if err := c.do(ctx, http.MethodPost, path, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteTopic(ctx context.Context, topicID string) error {
	return c.do(ctx, http.MethodDelete, "/api/topics/"+topicID, nil, nil)
}

func (c *Client) ListPosts(ctx context.Context, topicID string) ([]Post, error) {
	var out []Post
	path := fmt.Sprintf("/api/topics/%s/posts", topicID)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreatePost(ctx context.Context, topicID, body string) (*Post, error) {
	in := struct {
		Body string `json:"body"`
	}{body}
	var out Post
	path := fmt.Sprintf("/api/topics/%s/posts", topicID)
	if err := c.do(ctx, http.MethodPost, path, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetPost(ctx context.Context, postID string) (*Post, error) {
	var out Post
	if err := c.do(ctx, http.MethodGet, "/api/posts/"+postID, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdatePost(ctx context.Context, postID, body string) (*Post, error) {
	in := struct {
		Body string `json:"body"`
	}{body}
	var out Post
	if err := c.do(ctx, http.MethodPut, "/api/posts/"+postID, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeletePost(ctx context.Context, postID string) error {
	return c.do(ctx, http.MethodDelete, "/api/posts/"+postID, nil, nil)
}

// ListUsers is the admin-only user directory.
func (c *Client) ListUsers(ctx context.Context) ([]Author, error) {
	var out []Author
	if err := c.do(ctx, http.MethodGet, "/api/users", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
