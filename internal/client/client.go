// Package client talks to the edge relay's /api endpoints and hands back
// normalized comics.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/brogergvhs/mangaso/internal/comics"
)

var (
	ErrSearch = errors.New("搜索失败")
	ErrHot    = errors.New("加载热门失败")
	ErrDetail = errors.New("获取详情失败")
)

type Client struct {
	http *resty.Client
}

// New returns a client for the relay at baseURL. A zero timeout means
// requests wait as long as the relay does.
func New(baseURL string, timeout time.Duration) *Client {
	r := resty.New().
		SetBaseURL(baseURL).
		SetLogger(disableLogger{}).
		SetHeader("Accept", "application/json")

	if timeout > 0 {
		r.SetTimeout(timeout)
	}

	return &Client{http: r}
}

func (c *Client) Search(ctx context.Context, keyword string) ([]comics.Comic, error) {
	var items []map[string]any
	if err := c.getJSON(ctx, "/api/search", "q", keyword, ErrSearch, &items); err != nil {
		return nil, err
	}

	return comics.ComicsFromList(items), nil
}

func (c *Client) Hot(ctx context.Context) ([]comics.Comic, error) {
	var items []map[string]any
	if err := c.getJSON(ctx, "/api/hot", "", "", ErrHot, &items); err != nil {
		return nil, err
	}

	return comics.ComicsFromList(items), nil
}

func (c *Client) Detail(ctx context.Context, detailURL string) (comics.Detail, error) {
	var data map[string]any
	if err := c.getJSON(ctx, "/api/detail", "url", detailURL, ErrDetail, &data); err != nil {
		return comics.Detail{}, err
	}

	return comics.DetailFromPayload(data, detailURL), nil
}

func (c *Client) getJSON(ctx context.Context, path, param, value string, kind error, out any) error {
	req := c.http.R().SetContext(ctx)
	if param != "" {
		req.SetQueryParam(param, value)
	}

	resp, err := req.Get(path)
	if err != nil {
		return fmt.Errorf("%w: %v", kind, err)
	}

	if !resp.IsSuccess() {
		return fmt.Errorf("%w: HTTP %d", kind, resp.StatusCode())
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("%w: decode %s: %v", kind, path, err)
	}

	return nil
}

type disableLogger struct{}

func (disableLogger) Errorf(string, ...any) {}
func (disableLogger) Warnf(string, ...any)  {}
func (disableLogger) Debugf(string, ...any) {}
