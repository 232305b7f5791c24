// Package catalog serves the static storefront content: books, blog posts and lesson videos.
package catalog

import (
	"errors"

	"github.com/topnotch/storefront/internal/cart"
)

var (
	ErrBookNotFound     = errors.New("book not found")
	ErrBlogPostNotFound = errors.New("blog post not found")
)

type Book struct {
	Slug           string `json:"slug"`
	Title          string `json:"title"`
	Subject        string `json:"subject"`
	Form           string `json:"form"`
	Price          int64  `json:"price"`
	Description    string `json:"description"`
	CoverImagePath string `json:"coverImagePath"`
}

// Snapshot converts the book to the product carried by cart lines.
func (b Book) Snapshot() cart.ProductSnapshot {
	return cart.ProductSnapshot{
		Slug:           b.Slug,
		Title:          b.Title,
		Subject:        b.Subject,
		Form:           b.Form,
		Price:          b.Price,
		Description:    b.Description,
		CoverImagePath: b.CoverImagePath,
	}
}

const (
	PostPublished = "published"
	PostDraft     = "draft"
	PostArchived  = "archived"
)

type BlogPost struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Excerpt     string `json:"excerpt"`
	Content     string `json:"content"`
	PublishedAt string `json:"publishedAt"`
	CreatedAt   string `json:"createdAt,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
	Author      string `json:"author,omitempty"`
	Status      string `json:"status,omitempty"`
	Views       int    `json:"views,omitempty"`
}

type Video struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Service exposes read-only access to the storefront content.
type Service interface {
	Books() []Book
	// Book returns ErrBookNotFound for an unknown slug.
	Book(slug string) (Book, error)
	// Posts returns published blog posts.
	Posts() []BlogPost
	// Post returns ErrBlogPostNotFound for an unknown or unpublished slug.
	Post(slug string) (BlogPost, error)
	Videos() []Video
}

// Catalog is an immutable, ordered, slug indexed content set. Safe for concurrent use.
type Catalog struct {
	books     []Book
	bookIndex map[string]int
	posts     []BlogPost
	postIndex map[string]int
	videos    []Video
}

var _ Service = (*Catalog)(nil)
var _ cart.Catalog = (*Catalog)(nil)

// New builds a catalog. Later entries with a slug already seen are ignored.
func New(books []Book, posts []BlogPost, videos []Video) *Catalog {
	c := &Catalog{
		bookIndex: make(map[string]int, len(books)),
		postIndex: make(map[string]int, len(posts)),
		videos:    append([]Video(nil), videos...),
	}
	for _, b := range books {
		if _, dup := c.bookIndex[b.Slug]; dup || b.Slug == "" {
			continue
		}
		c.bookIndex[b.Slug] = len(c.books)
		c.books = append(c.books, b)
	}
	for _, p := range posts {
		if _, dup := c.postIndex[p.Slug]; dup || p.Slug == "" || p.Status != PostPublished {
			continue
		}
		c.postIndex[p.Slug] = len(c.posts)
		c.posts = append(c.posts, p)
	}
	return c
}

// Default returns the catalog with the built-in content.
func Default() *Catalog {
	return New(books, blogPosts, videos)
}

func (c *Catalog) Books() []Book {
	return append([]Book(nil), c.books...)
}

func (c *Catalog) Book(slug string) (Book, error) {
	i, ok := c.bookIndex[slug]
	if !ok {
		return Book{}, ErrBookNotFound
	}
	return c.books[i], nil
}

func (c *Catalog) Posts() []BlogPost {
	return append([]BlogPost(nil), c.posts...)
}

func (c *Catalog) Post(slug string) (BlogPost, error) {
	i, ok := c.postIndex[slug]
	if !ok {
		return BlogPost{}, ErrBlogPostNotFound
	}
	return c.posts[i], nil
}

func (c *Catalog) Videos() []Video {
	return append([]Video(nil), c.videos...)
}

// Lookup resolves a slug to a cart product.
func (c *Catalog) Lookup(slug string) (cart.ProductSnapshot, bool) {
	b, err := c.Book(slug)
	if err != nil {
		return cart.ProductSnapshot{}, false
	}
	return b.Snapshot(), true
}
