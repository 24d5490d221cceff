package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
)

func TestFieldFallbacks(t *testing.T) {
	item := gjson.Parse(`{
		"name": "  ",
		"nullish": null,
		"fee": "12.5",
		"count": 7,
		"active": false,
		"createdAt": "2024-03-09T10:11:12.000Z",
		"bad": "yesterday",
		"pic": "/uploads/a.png",
		"abs": "https://cdn.example.com/b.png",
		"nested": {"full_name": "Asha"},
		"tags": ["a", "", "b"]
	}`)

	assert.Equal(t, NA, Str(item, "name", NA))
	assert.Equal(t, NA, Str(item, "nullish", NA))
	assert.Equal(t, Unknown, Str(item, "missing", Unknown))
	assert.Equal(t, "Asha", Str(item, "nested.full_name", Unknown))
	assert.Equal(t, Unknown, Str(item, "other.full_name", Unknown))

	assert.Equal(t, 12.5, Float(item, "fee"))
	assert.Equal(t, int64(7), Int(item, "count"))
	assert.Equal(t, int64(0), Int(item, "missing"))
	assert.Equal(t, 0.0, Float(item, "name"))

	assert.False(t, Bool(item, "active", true))
	assert.True(t, Bool(item, "missing", true))
	assert.False(t, Bool(item, "nullish", false))

	assert.Equal(t, "2024-03-09", Date(item, "createdAt", NA))
	assert.Equal(t, "2024-03-09 10:11", DateTime(item, "createdAt", NA))
	assert.Equal(t, NA, Date(item, "bad", NA))
	assert.Equal(t, NA, Date(item, "missing", NA))

	assert.Equal(t, "https://api.example.com/uploads/a.png", Media("https://api.example.com/", item, "pic"))
	assert.Equal(t, "https://cdn.example.com/b.png", Media("https://api.example.com/", item, "abs"))
	assert.Equal(t, NA, Media("https://api.example.com/", item, "missing"))

	assert.Equal(t, []string{"a", "b"}, Strings(item, "tags"))
	assert.Nil(t, Strings(item, "missing"))
}
