// Package app is the client controller. It owns the application state and
// turns user actions into relay calls and view updates.
//
// An App is driven from a single goroutine, the way a UI thread would
// drive it. Actions are not cancelled or coalesced: when two overlap, the
// one that finishes last wins.
package app

import (
	"context"
	"strings"

	"github.com/brogergvhs/mangaso/internal/comics"
)

type Pane int

const (
	PaneList Pane = iota
	PaneDetail
)

func (p Pane) String() string {
	if p == PaneDetail {
		return "detail"
	}
	return "list"
}

// State is the whole of the client's mutable state.
type State struct {
	Comics  []comics.Comic
	Current *comics.Comic
	Detail  *comics.Detail
	Pane    Pane
}

type API interface {
	Search(ctx context.Context, keyword string) ([]comics.Comic, error)
	Hot(ctx context.Context) ([]comics.Comic, error)
	Detail(ctx context.Context, detailURL string) (comics.Detail, error)
}

// View renders panes and user-facing messages. Pane switches happen only
// through ShowList and ShowDetail.
type View interface {
	ShowLoading()
	HideLoading()
	RenderList(list []comics.Comic)
	RenderDetail(d comics.Detail)
	ShowList()
	ShowDetail()
	// Alert blocks until the user acknowledges msg.
	Alert(msg string)
}

type Logger interface {
	Errorf(string, ...any)
}

const (
	msgSearchFailed = "搜索失败，请稍后重试"
	msgDetailFailed = "获取漫画详情失败"
)

type App struct {
	api   API
	view  View
	log   Logger
	state State
}

func New(api API, view View, log Logger) *App {
	return &App{api: api, view: view, log: log}
}

// State returns a copy of the current state.
func (a *App) State() State {
	return a.state
}

// Start loads the hot list. Failure leaves an empty list and is only logged.
func (a *App) Start(ctx context.Context) {
	a.view.ShowLoading()
	defer a.view.HideLoading()

	list, err := a.api.Hot(ctx)
	if err != nil {
		a.log.Errorf("加载热门漫画失败: %v\n", err)
		return
	}

	a.state.Comics = list
	a.view.RenderList(list)
}

// Search replaces the list with the results for keyword. A blank keyword
// is ignored.
func (a *App) Search(ctx context.Context, keyword string) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return
	}

	a.view.ShowLoading()
	defer a.view.HideLoading()

	list, err := a.api.Search(ctx, keyword)
	if err != nil {
		a.log.Errorf("搜索失败: %v\n", err)
		a.view.Alert(msgSearchFailed)
		return
	}

	a.state.Comics = list
	a.view.RenderList(list)
}

// OpenComic fetches the detail of c and switches to the detail pane.
func (a *App) OpenComic(ctx context.Context, c comics.Comic) {
	a.view.ShowLoading()
	defer a.view.HideLoading()

	a.state.Current = &c

	d, err := a.api.Detail(ctx, c.DetailURL)
	if err != nil {
		a.log.Errorf("获取详情失败: %v\n", err)
		a.view.Alert(msgDetailFailed)
		return
	}

	a.state.Detail = &d
	a.view.RenderDetail(d)
	a.state.Pane = PaneDetail
	a.view.ShowDetail()
}

// Back returns to the list pane without refetching.
func (a *App) Back() {
	a.state.Pane = PaneList
	a.view.ShowList()
}

// OpenChapter acknowledges the choice. There is no reader.
func (a *App) OpenChapter(ch comics.Chapter) {
	a.view.Alert("准备阅读 " + ch.Name)
}
