package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()

	assert.Len(t, c.Books(), 8)
	assert.Len(t, c.Posts(), 5)
	assert.Len(t, c.Videos(), 4)
	assert.Equal(t, "kcse-mathematics-form-4-octopus-revision", c.Books()[0].Slug)
}

func TestCatalog_Book(t *testing.T) {
	c := Default()

	testCases := []struct {
		name          string
		slug          string
		expectedPrice int64
		expectedErr   error
	}{
		{name: "known slug", slug: "kcse-chemistry-form-3-visual-notes", expectedPrice: 920},
		{name: "unknown slug", slug: "kcse-latin-form-1", expectedErr: ErrBookNotFound},
		{name: "empty slug", slug: "", expectedErr: ErrBookNotFound},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// when
			book, err := c.Book(tc.slug)

			// then
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedPrice, book.Price)
		})
	}
}

func TestCatalog_Lookup(t *testing.T) {
	// given
	c := Default()

	// when
	product, ok := c.Lookup("kcse-mathematics-form-4-octopus-revision")
	_, missing := c.Lookup("retired")

	// then
	require.True(t, ok)
	assert.Equal(t, int64(850), product.Price)
	assert.Equal(t, "Mathematics", product.Subject)
	assert.False(t, missing)
}

func TestNew_FiltersPostsAndDuplicates(t *testing.T) {
	// given
	books := []Book{{Slug: "a", Price: 1}, {Slug: "a", Price: 2}, {Slug: ""}}
	posts := []BlogPost{
		{Slug: "live", Status: PostPublished},
		{Slug: "draft", Status: PostDraft},
		{Slug: "old", Status: PostArchived},
	}

	// when
	c := New(books, posts, nil)

	// then
	require.Len(t, c.Books(), 1)
	assert.Equal(t, int64(1), c.Books()[0].Price)
	require.Len(t, c.Posts(), 1)
	_, err := c.Post("draft")
	assert.ErrorIs(t, err, ErrBlogPostNotFound)
	post, err := c.Post("live")
	require.NoError(t, err)
	assert.Equal(t, "live", post.Slug)
	assert.Empty(t, c.Videos())
}

func TestCatalog_BooksReturnsCopy(t *testing.T) {
	// given
	c := Default()

	// when
	list := c.Books()
	list[0].Price = 1

	// then
	book, err := c.Book(list[0].Slug)
	require.NoError(t, err)
	assert.Equal(t, int64(850), book.Price)
}
