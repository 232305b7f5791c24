package cart

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalRecord(t *testing.T) {
	// given
	c := Cart{}.withAdded(bookA).withAdded(bookA).withAdded(bookB)

	// when
	data, err := MarshalRecord(RecordOf(c))

	// then
	require.NoError(t, err)
	assert.JSONEq(t, `[{"s":"kcse-mathematics-form-4-octopus-revision","q":2},{"s":"kcse-chemistry-form-3-visual-notes","q":1}]`, string(data))
}

func TestMarshalRecord_Nil(t *testing.T) {
	data, err := MarshalRecord(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestUnmarshalRecord_Malformed(t *testing.T) {
	testCases := []struct {
		name string
		data string
	}{
		{name: "empty input", data: ""},
		{name: "truncated json", data: `[{"s":"a","q":1}`},
		{name: "object instead of array", data: `{"s":"a","q":1}`},
		{name: "string quantity", data: `[{"s":"a","q":"2"}]`},
		{name: "fractional quantity", data: `[{"s":"a","q":1.5}]`},
		{name: "numeric slug", data: `[{"s":12,"q":1}]`},
		{name: "plain text", data: `topnotch`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// when
			record, err := UnmarshalRecord([]byte(tc.data))

			// then
			require.ErrorIs(t, err, ErrMalformedRecord)
			assert.Nil(t, record)
		})
	}
}

func TestUnmarshalRecord_Lenient(t *testing.T) {
	testCases := []struct {
		name     string
		data     string
		expected Record
	}{
		{name: "null", data: `null`, expected: nil},
		{name: "empty array", data: `[]`, expected: Record{}},
		{name: "unknown fields are ignored", data: `[{"s":"a","q":1,"x":true}]`, expected: Record{{"a", 1}}},
		{name: "missing fields decode to zero", data: `[{"q":3},{"s":"b"}]`, expected: Record{{"", 3}, {"b", 0}}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			record, err := UnmarshalRecord([]byte(tc.data))
			require.NoError(t, err)
			assert.Equal(t, tc.expected, record)
		})
	}
}

func TestResolve(t *testing.T) {
	catalog := newCatalog(bookA, bookB)

	testCases := []struct {
		name     string
		record   Record
		expected []RecordEntry
	}{
		{
			name:     "keeps order",
			record:   Record{{bookB.Slug, 1}, {bookA.Slug, 3}},
			expected: []RecordEntry{{bookB.Slug, 1}, {bookA.Slug, 3}},
		},
		{
			name:     "drops unknown slugs",
			record:   Record{{"retired-book", 2}, {bookA.Slug, 1}},
			expected: []RecordEntry{{bookA.Slug, 1}},
		},
		{
			name:     "drops quantities below one",
			record:   Record{{bookA.Slug, 0}, {bookB.Slug, -2}},
			expected: []RecordEntry{},
		},
		{
			name:     "drops empty slugs",
			record:   Record{{"", 4}},
			expected: []RecordEntry{},
		},
		{
			name:     "merges repeated slugs",
			record:   Record{{bookA.Slug, 1}, {bookB.Slug, 1}, {bookA.Slug, 2}},
			expected: []RecordEntry{{bookA.Slug, 3}, {bookB.Slug, 1}},
		},
		{
			name:     "clamps oversized quantities",
			record:   Record{{bookA.Slug, MaxQuantity + 1}, {bookB.Slug, math.MaxInt}},
			expected: []RecordEntry{{bookA.Slug, MaxQuantity}, {bookB.Slug, MaxQuantity}},
		},
		{
			name:     "merge cannot wrap around",
			record:   Record{{bookA.Slug, math.MaxInt}, {bookA.Slug, 1}},
			expected: []RecordEntry{{bookA.Slug, MaxQuantity}},
		},
		{
			name:     "merge stops at the line limit",
			record:   Record{{bookA.Slug, MaxQuantity - 1}, {bookA.Slug, 2}},
			expected: []RecordEntry{{bookA.Slug, MaxQuantity}},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// when
			c := Resolve(tc.record, catalog)

			// then
			assert.Equal(t, tc.expected, quantities(c))
		})
	}
}

func TestResolve_UsesCatalogProduct(t *testing.T) {
	// given
	repriced := bookA
	repriced.Price = 1000

	// when
	c := Resolve(Record{{bookA.Slug, 2}}, newCatalog(repriced))

	// then
	line, ok := c.Find(bookA.Slug)
	require.True(t, ok)
	assert.Equal(t, int64(1000), line.Product.Price)
	assert.Equal(t, int64(2000), c.TotalPrice())
}
