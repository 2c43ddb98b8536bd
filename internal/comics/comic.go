// Package comics holds the comic and chapter shapes shown by the client and
// the normalization that maps the upstream's inconsistent JSON onto them.
package comics

import (
	"strconv"
	"strings"
)

const (
	// Upstream is the origin every proxied request is sent to.
	Upstream = "http://manwaso.cc"

	// ImageOrigin prefixes relative cover paths.
	ImageOrigin = "https://manwaso.cc"

	UnknownAuthor   = "作者未知"
	UnknownCategory = "未知"
	NoDescription   = "暂无简介"
)

type Comic struct {
	Name      string
	Cover     string
	Author    string
	DetailURL string
}

// DisplayAuthor returns the author or the placeholder used by the list grid.
func (c Comic) DisplayAuthor() string {
	if c.Author == "" {
		return UnknownAuthor
	}
	return c.Author
}

type Chapter struct {
	Name string
	URL  string
}

type Detail struct {
	Title    string
	Cover    string
	Author   string
	Category string
	Desc     string
	Chapters []Chapter
}

// EnsureAbsoluteURL turns protocol-relative and site-relative cover paths
// into absolute URLs. Anything starting with "http" is returned as is.
func EnsureAbsoluteURL(u string) string {
	switch {
	case u == "":
		return ""
	case strings.HasPrefix(u, "http"):
		return u
	case strings.HasPrefix(u, "//"):
		return "https:" + u
	case strings.HasPrefix(u, "/"):
		return ImageOrigin + u
	default:
		return ImageOrigin + "/" + u
	}
}

// ComicFromItem normalizes one entry of a search or hot-list response.
func ComicFromItem(item map[string]any) Comic {
	detailURL := pick(item, "url")
	if detailURL == "" {
		detailURL = Upstream + "/book/" + format(item["id"])
	}

	return Comic{
		Name:      pick(item, "title", "book_name"),
		Cover:     EnsureAbsoluteURL(pick(item, "cover", "cover_url")),
		Author:    pick(item, "author", "author_name"),
		DetailURL: detailURL,
	}
}

func ComicsFromList(items []map[string]any) []Comic {
	out := make([]Comic, 0, len(items))
	for _, it := range items {
		out = append(out, ComicFromItem(it))
	}

	return out
}

// DetailFromPayload normalizes a detail response. detailURL is the URL the
// detail was requested with; chapters without their own URL hang off it.
func DetailFromPayload(data map[string]any, detailURL string) Detail {
	d := Detail{
		Title:    pick(data, "title", "book_name"),
		Cover:    EnsureAbsoluteURL(pick(data, "cover", "cover_url")),
		Author:   orDefault(pick(data, "author"), UnknownAuthor),
		Category: pick(data, "category"),
		Desc:     orDefault(pick(data, "desc"), NoDescription),
		Chapters: []Chapter{},
	}

	if d.Category == "" {
		if tags, ok := data["tags"].([]any); ok {
			parts := make([]string, 0, len(tags))
			for _, t := range tags {
				parts = append(parts, scalar(t))
			}
			d.Category = strings.Join(parts, ", ")
		}
	}
	d.Category = orDefault(d.Category, UnknownCategory)

	raw, _ := data["chapters"].([]any)
	for i, c := range raw {
		chap, _ := c.(map[string]any)
		n := strconv.Itoa(i + 1)

		d.Chapters = append(d.Chapters, Chapter{
			Name: orDefault(pick(chap, "name"), "第"+n+"章"),
			URL:  orDefault(pick(chap, "url"), detailURL+"/chapter/"+n),
		})
	}

	return d
}

// pick returns the first key whose value is a non-empty scalar.
func pick(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s := scalar(m[k]); s != "" {
			return s
		}
	}

	return ""
}

// scalar treats zero numbers as absent so that display fields fall through
// to their alternatives.
func scalar(v any) string {
	switch t := v.(type) {
	case float64:
		if t == 0 {
			return ""
		}
	case int:
		if t == 0 {
			return ""
		}
	}

	return format(v)
}

// format renders a string or number; 0 is a valid id and formats as "0".
func format(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	default:
		return ""
	}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
