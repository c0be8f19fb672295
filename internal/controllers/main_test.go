package controllers

import (
	"errors"
	"image"
	"strings"
	"testing"

	"borrow-trends/internal/charts"
	"borrow-trends/internal/dataprep"
	"borrow-trends/internal/logger"
	"borrow-trends/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const loans = `Income,Loan_Amount,Credit_Score,Age,Gender,Default
50000,20000,700,34,Male,Yes
60000,,650,45,Female,No
42000,15000,680,29,Female,No
81000,32000,720,51,Male,Yes
39000,12000,610,38,Male,No
`

type shownChart struct {
	position int
	total    int
	title    string
}

type fakeView struct {
	titles []string
	shown  []shownChart
	status string
	errors []error
	infos  []string
	closed int

	previous    func()
	next        func()
	save        func()
	close       func()
	chartSelect func(string)
}

func (f *fakeView) SetPreviousHandler(handler func())          { f.previous = handler }
func (f *fakeView) SetNextHandler(handler func())              { f.next = handler }
func (f *fakeView) SetSaveHandler(handler func())              { f.save = handler }
func (f *fakeView) SetCloseHandler(handler func())             { f.close = handler }
func (f *fakeView) SetChartSelectHandler(handler func(string)) { f.chartSelect = handler }
func (f *fakeView) SetChartTitles(titles []string)             { f.titles = titles }
func (f *fakeView) UpdateStatus(status string)                 { f.status = status }
func (f *fakeView) ShowError(_ string, err error)              { f.errors = append(f.errors, err) }
func (f *fakeView) ShowInfo(_, message string)                 { f.infos = append(f.infos, message) }
func (f *fakeView) Close()                                     { f.closed++ }

func (f *fakeView) ShowChart(position, total int, title string, _ image.Image) {
	f.shown = append(f.shown, shownChart{position: position, total: total, title: title})
}

func (f *fakeView) last() shownChart {
	return f.shown[len(f.shown)-1]
}

type fakeSaver struct {
	saved []int
	err   error
}

func (s *fakeSaver) SaveToPath(a charts.Artifact) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.saved = append(s.saved, a.Index())
	return "graph.png", nil
}

type countingPreview struct {
	calls map[int]int
	err   error
}

func (p *countingPreview) render(a charts.Artifact) (image.Image, error) {
	if p.err != nil {
		return nil, p.err
	}
	p.calls[a.Index()]++
	return image.NewRGBA(image.Rect(0, 0, 4, 4)), nil
}

func newDeck(t *testing.T) *session.Deck {
	t.Helper()
	raw, err := dataprep.LoadReader(strings.NewReader(loans))
	require.NoError(t, err)
	result, err := dataprep.NewPipeline(logger.NewNop(), dataprep.RecodeOptions{}).Clean(raw)
	require.NoError(t, err)

	return session.NewDeck(charts.NewGenerator(logger.NewNop()).Generate(result.Records, result.Correlation))
}

func newController(t *testing.T) (*MainController, *fakeView, *fakeSaver, *countingPreview) {
	t.Helper()
	view := &fakeView{}
	saver := &fakeSaver{}
	preview := &countingPreview{calls: make(map[int]int)}

	mc := NewMainController(newDeck(t), saver, preview.render, logger.NewNop())
	mc.SetMainView(view)
	return mc, view, saver, preview
}

func TestSetMainViewConnectsHandlersAndTitles(t *testing.T) {
	_, view, _, _ := newController(t)

	assert.Equal(t, charts.Titles(), view.titles)
	assert.NotNil(t, view.previous)
	assert.NotNil(t, view.next)
	assert.NotNil(t, view.save)
	assert.NotNil(t, view.close)
	assert.NotNil(t, view.chartSelect)
}

func TestNavigationThroughViewHandlers(t *testing.T) {
	mc, view, _, _ := newController(t)

	mc.ShowIndex(0)
	assert.Equal(t, shownChart{0, 6, charts.TitleIncomeVsLoan}, view.last())

	view.previous()
	assert.Equal(t, 0, mc.State().Current)

	view.next()
	view.next()
	assert.Equal(t, shownChart{2, 6, charts.TitleLoanVsDefault}, view.last())

	for i := 0; i < 10; i++ {
		view.next()
	}
	assert.Equal(t, 5, mc.State().Current)
	assert.Equal(t, charts.TitleCorrelationHeatmap, view.last().title)

	view.chartSelect(charts.TitleCreditScore)
	assert.Equal(t, 1, mc.State().Current)

	view.chartSelect("Unknown")
	assert.Equal(t, 1, mc.State().Current)
}

func TestShowIndexOutOfRangeKeepsSelection(t *testing.T) {
	mc, _, _, _ := newController(t)

	mc.ShowIndex(3)
	mc.ShowIndex(42)
	mc.ShowIndex(-1)
	assert.Equal(t, session.State{Current: 3}, mc.State())
}

func TestPreviewsAreCachedPerIndex(t *testing.T) {
	mc, _, _, preview := newController(t)

	mc.ShowIndex(0)
	mc.Next()
	mc.Previous()
	mc.Next()

	assert.Equal(t, map[int]int{0: 1, 1: 1}, preview.calls)
}

func TestPreviewFailureShowsError(t *testing.T) {
	view := &fakeView{}
	preview := &countingPreview{calls: make(map[int]int), err: errors.New("boom")}
	mc := NewMainController(newDeck(t), &fakeSaver{}, preview.render, logger.NewNop())
	mc.SetMainView(view)

	mc.ShowIndex(0)
	require.Len(t, view.errors, 1)
	assert.Contains(t, view.errors[0].Error(), "boom")
	assert.Empty(t, view.shown)
}

func TestSaveCurrent(t *testing.T) {
	mc, view, saver, _ := newController(t)

	mc.ShowIndex(4)
	view.save()

	assert.Equal(t, []int{4}, saver.saved)
	assert.Equal(t, []string{"Graph 4 saved as an image!"}, view.infos)
	assert.Empty(t, view.errors)
}

func TestSaveFailureShowsErrorAndSessionContinues(t *testing.T) {
	mc, view, saver, _ := newController(t)
	saver.err = errors.New("disk full")

	mc.ShowIndex(1)
	mc.SaveCurrent()

	require.Len(t, view.errors, 1)
	assert.Empty(t, view.infos)
	assert.Equal(t, "Save failed", view.status)

	mc.Next()
	assert.Equal(t, 2, mc.State().Current)
}

func TestCloseRunsCallbackOnce(t *testing.T) {
	mc, view, _, _ := newController(t)
	calls := 0
	mc.SetCloseCallback(func() { calls++ })

	view.close()
	mc.Shutdown()

	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, view.closed)
}

func TestEmptyDeck(t *testing.T) {
	view := &fakeView{}
	saver := &fakeSaver{}
	mc := NewMainController(session.NewDeck(nil), saver, nil, logger.NewNop())
	mc.SetMainView(view)

	mc.ShowIndex(0)
	mc.Next()
	mc.SaveCurrent()

	assert.Empty(t, view.shown)
	assert.Empty(t, saver.saved)
	assert.Equal(t, "No graphs available", view.status)
}

func TestSavedMessage(t *testing.T) {
	assert.Equal(t, "Graph 0 saved as an image!", SavedMessage(0))
}
