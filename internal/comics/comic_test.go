package comics

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureAbsoluteURL(t *testing.T) {
	cases := map[string]string{
		"http://x/y":   "http://x/y",
		"https://x/y":  "https://x/y",
		"//x/y":        "https://x/y",
		"/y":           "https://manwaso.cc/y",
		"y":            "https://manwaso.cc/y",
		"covers/a.jpg": "https://manwaso.cc/covers/a.jpg",
		"":             "",
	}

	for in, want := range cases {
		assert.Equal(t, want, EnsureAbsoluteURL(in), "input %q", in)
	}
}

func decodeObject(t *testing.T, s string) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(s), &m))
	return m
}

func TestComicFromItem_PrimaryFields(t *testing.T) {
	c := ComicFromItem(decodeObject(t, `{
		"title": "海贼王", "book_name": "ignored",
		"cover": "//img.manwaso.cc/1.jpg", "cover_url": "ignored",
		"author": "尾田荣一郎", "author_name": "ignored",
		"url": "http://manwaso.cc/book/1", "id": 9
	}`))

	assert.Equal(t, Comic{
		Name:      "海贼王",
		Cover:     "https://img.manwaso.cc/1.jpg",
		Author:    "尾田荣一郎",
		DetailURL: "http://manwaso.cc/book/1",
	}, c)
}

func TestComicFromItem_FallbackFields(t *testing.T) {
	c := ComicFromItem(decodeObject(t, `{
		"book_name": "火影忍者",
		"cover_url": "/covers/2.jpg",
		"author_name": "岸本齐史",
		"id": 42
	}`))

	assert.Equal(t, "火影忍者", c.Name)
	assert.Equal(t, "https://manwaso.cc/covers/2.jpg", c.Cover)
	assert.Equal(t, "岸本齐史", c.Author)
	assert.Equal(t, "http://manwaso.cc/book/42", c.DetailURL)
}

func TestComicFromItem_EmptyPrimaryFallsThrough(t *testing.T) {
	c := ComicFromItem(map[string]any{"title": "", "book_name": "B"})
	assert.Equal(t, "B", c.Name)
}

func TestComicFromItem_Missing(t *testing.T) {
	c := ComicFromItem(map[string]any{})

	assert.Empty(t, c.Name)
	assert.Empty(t, c.Cover)
	assert.Empty(t, c.Author)
	assert.Equal(t, UnknownAuthor, c.DisplayAuthor())
	assert.Equal(t, "http://manwaso.cc/book/", c.DetailURL)
}

func TestComicFromItem_ZeroID(t *testing.T) {
	c := ComicFromItem(decodeObject(t, `{"id":0,"title":0}`))

	assert.Equal(t, "http://manwaso.cc/book/0", c.DetailURL)
	assert.Empty(t, c.Name)

	c = ComicFromItem(map[string]any{"id": 0})
	assert.Equal(t, "http://manwaso.cc/book/0", c.DetailURL)
}

func TestComicsFromList(t *testing.T) {
	var items []map[string]any
	require.NoError(t, json.Unmarshal([]byte(`[{"title":"a","id":1},{"book_name":"b","id":2}]`), &items))

	got := ComicsFromList(items)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Name)
	assert.Equal(t, "b", got[1].Name)
	assert.Equal(t, "http://manwaso.cc/book/2", got[1].DetailURL)
}

func TestDetailFromPayload(t *testing.T) {
	d := DetailFromPayload(decodeObject(t, `{
		"book_name": "进击的巨人",
		"cover_url": "c.jpg",
		"tags": ["热血", "奇幻"],
		"chapters": [
			{"name": "序章", "url": "http://manwaso.cc/book/5/chapter/0"},
			{},
			{"name": "终章"}
		]
	}`), "http://manwaso.cc/book/5")

	assert.Equal(t, "进击的巨人", d.Title)
	assert.Equal(t, "https://manwaso.cc/c.jpg", d.Cover)
	assert.Equal(t, UnknownAuthor, d.Author)
	assert.Equal(t, "热血, 奇幻", d.Category)
	assert.Equal(t, NoDescription, d.Desc)
	assert.Equal(t, []Chapter{
		{Name: "序章", URL: "http://manwaso.cc/book/5/chapter/0"},
		{Name: "第2章", URL: "http://manwaso.cc/book/5/chapter/2"},
		{Name: "终章", URL: "http://manwaso.cc/book/5/chapter/3"},
	}, d.Chapters)
}

func TestDetailFromPayload_Defaults(t *testing.T) {
	d := DetailFromPayload(map[string]any{"title": "t", "category": "冒险", "desc": "简介", "author": "某人"}, "/book/1")

	assert.Equal(t, "冒险", d.Category)
	assert.Equal(t, "简介", d.Desc)
	assert.Equal(t, "某人", d.Author)
	assert.NotNil(t, d.Chapters)
	assert.Empty(t, d.Chapters)
}

func TestDetailFromPayload_EmptyTags(t *testing.T) {
	d := DetailFromPayload(map[string]any{"tags": []any{}}, "")
	assert.Equal(t, UnknownCategory, d.Category)
}
