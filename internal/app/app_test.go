package app

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/brogergvhs/mangaso/internal/comics"
)

type MockAPI struct {
	mock.Mock
}

func (m *MockAPI) Search(ctx context.Context, keyword string) ([]comics.Comic, error) {
	args := m.Called(ctx, keyword)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]comics.Comic), args.Error(1)
}

func (m *MockAPI) Hot(ctx context.Context) ([]comics.Comic, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]comics.Comic), args.Error(1)
}

func (m *MockAPI) Detail(ctx context.Context, detailURL string) (comics.Detail, error) {
	args := m.Called(ctx, detailURL)
	return args.Get(0).(comics.Detail), args.Error(1)
}

type fakeView struct {
	loading  bool
	loads    int
	list     []comics.Comic
	rendered int
	detail   *comics.Detail
	pane     Pane
	switches int
	alerts   []string
}

func (v *fakeView) ShowLoading() { v.loading = true; v.loads++ }
func (v *fakeView) HideLoading() { v.loading = false }
func (v *fakeView) RenderList(l []comics.Comic) { v.list = l; v.rendered++ }
func (v *fakeView) RenderDetail(d comics.Detail) { v.detail = &d }
func (v *fakeView) ShowList() { v.pane = PaneList; v.switches++ }
func (v *fakeView) ShowDetail() { v.pane = PaneDetail; v.switches++ }
func (v *fakeView) Alert(msg string) { v.alerts = append(v.alerts, msg) }

type countingLogger struct {
	entries []string
}

func (l *countingLogger) Errorf(format string, args ...any) {
	l.entries = append(l.entries, fmt.Sprintf(format, args...))
}

var (
	ctx       = context.Background()
	onePiece  = comics.Comic{Name: "海贼王", DetailURL: "http://manwaso.cc/book/1"}
	naruto    = comics.Comic{Name: "火影忍者", DetailURL: "http://manwaso.cc/book/2"}
	errFailed = errors.New("boom")
)

func newApp() (*App, *MockAPI, *fakeView, *countingLogger) {
	api := &MockAPI{}
	view := &fakeView{}
	log := &countingLogger{}
	return New(api, view, log), api, view, log
}

func TestStart_LoadsHot(t *testing.T) {
	a, api, view, log := newApp()
	api.On("Hot", ctx).Return([]comics.Comic{onePiece}, nil)

	a.Start(ctx)

	assert.Equal(t, []comics.Comic{onePiece}, a.State().Comics)
	assert.Equal(t, []comics.Comic{onePiece}, view.list)
	assert.False(t, view.loading)
	assert.Empty(t, log.entries)
	api.AssertExpectations(t)
}

func TestStart_FailureOnlyLogs(t *testing.T) {
	a, api, view, log := newApp()
	api.On("Hot", ctx).Return(nil, errFailed)

	a.Start(ctx)

	assert.Len(t, log.entries, 1)
	assert.Empty(t, view.alerts)
	assert.Zero(t, view.rendered)
	assert.False(t, view.loading)
	assert.Empty(t, a.State().Comics)
}

func TestSearch_ReplacesList(t *testing.T) {
	a, api, view, _ := newApp()
	api.On("Hot", ctx).Return([]comics.Comic{onePiece}, nil)
	api.On("Search", ctx, "火影").Return([]comics.Comic{naruto}, nil)

	a.Start(ctx)
	a.Search(ctx, "  火影 ")

	assert.Equal(t, []comics.Comic{naruto}, a.State().Comics)
	assert.Equal(t, []comics.Comic{naruto}, view.list)
	assert.Equal(t, 2, view.rendered)
	assert.False(t, view.loading)
	api.AssertExpectations(t)
}

func TestSearch_BlankIsNoop(t *testing.T) {
	a, api, view, _ := newApp()
	api.On("Hot", ctx).Return([]comics.Comic{onePiece}, nil)
	a.Start(ctx)

	for _, kw := range []string{"", "   ", "\t\n"} {
		a.Search(ctx, kw)
	}

	api.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
	assert.Equal(t, []comics.Comic{onePiece}, a.State().Comics)
	assert.Equal(t, 1, view.loads)
	assert.Equal(t, 1, view.rendered)
}

func TestSearch_FailureAlertsAndKeepsList(t *testing.T) {
	a, api, view, log := newApp()
	api.On("Hot", ctx).Return([]comics.Comic{onePiece}, nil)
	api.On("Search", ctx, "x").Return(nil, errFailed)
	a.Start(ctx)

	a.Search(ctx, "x")

	assert.Equal(t, []string{msgSearchFailed}, view.alerts)
	assert.Len(t, log.entries, 1)
	assert.Equal(t, []comics.Comic{onePiece}, a.State().Comics)
	assert.False(t, view.loading)
}

func TestOpenComic_SwitchesToDetail(t *testing.T) {
	a, api, view, _ := newApp()
	d := comics.Detail{Title: "海贼王", Chapters: []comics.Chapter{{Name: "第1章"}}}
	api.On("Detail", ctx, onePiece.DetailURL).Return(d, nil)

	a.OpenComic(ctx, onePiece)

	st := a.State()
	assert.Equal(t, PaneDetail, st.Pane)
	assert.Equal(t, &onePiece, st.Current)
	assert.Equal(t, &d, st.Detail)
	assert.Equal(t, PaneDetail, view.pane)
	assert.Equal(t, &d, view.detail)
	assert.False(t, view.loading)
}

func TestOpenComic_FailureStaysOnList(t *testing.T) {
	a, api, view, log := newApp()
	api.On("Detail", ctx, onePiece.DetailURL).Return(comics.Detail{}, errFailed)

	a.OpenComic(ctx, onePiece)

	assert.False(t, view.loading)
	assert.Zero(t, view.switches)
	assert.Nil(t, view.detail)
	assert.Equal(t, PaneList, a.State().Pane)
	assert.Len(t, log.entries, 1)
	assert.Equal(t, []string{msgDetailFailed}, view.alerts)
}

func TestBack_NoRefetch(t *testing.T) {
	a, api, view, _ := newApp()
	api.On("Hot", ctx).Return([]comics.Comic{onePiece}, nil)
	api.On("Detail", ctx, onePiece.DetailURL).Return(comics.Detail{Title: "t"}, nil)

	a.Start(ctx)
	a.OpenComic(ctx, onePiece)
	a.Back()

	assert.Equal(t, PaneList, a.State().Pane)
	assert.Equal(t, PaneList, view.pane)
	assert.Equal(t, []comics.Comic{onePiece}, a.State().Comics)
	api.AssertNumberOfCalls(t, "Hot", 1)
	assert.Equal(t, 1, view.rendered)
}

func TestOpenChapter_Alerts(t *testing.T) {
	a, _, view, _ := newApp()

	a.OpenChapter(comics.Chapter{Name: "第3章", URL: "u"})

	assert.Equal(t, []string{"准备阅读 第3章"}, view.alerts)
	assert.Equal(t, PaneList, a.State().Pane)
}

func TestPaneString(t *testing.T) {
	assert.Equal(t, "list", PaneList.String())
	assert.Equal(t, "detail", PaneDetail.String())
}
