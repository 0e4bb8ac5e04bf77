package brief

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dailybrief/internal/news"
)

type fakeCompleter struct {
	response string
	err      error
	calls    int
}

func (f *fakeCompleter) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	f.calls++
	return f.response, f.err
}

func makeArticles(n int) []news.Article {
	articles := make([]news.Article, n)
	for i := range articles {
		articles[i] = news.Article{
			Title:           string(rune('A' + i)),
			SummaryTwoLines: "summary",
			Category:        "Tech",
		}
	}
	return articles
}

func TestSelectTop_UsesRankingIndices(t *testing.T) {
	completer := &fakeCompleter{response: `{"top5_indices": [3, 0, 5, 1, 2]}`}
	s := NewSelector(completer)

	articles := makeArticles(6)
	top := s.SelectTop(context.Background(), articles)

	require.Len(t, top, 5)
	assert.Equal(t, articles[3].Title, top[0].Title)
	assert.Equal(t, articles[0].Title, top[1].Title)
	assert.Equal(t, articles[5].Title, top[2].Title)
	assert.Equal(t, 1, completer.calls)
}

func TestSelectTop_DropsOutOfRangeIndices(t *testing.T) {
	// 7 and -1 are out of range and dropped without replacement; the result
	// may hold fewer than 5 articles.
	completer := &fakeCompleter{response: `{"top5_indices": [7, 1, -1, 0, 2]}`}
	s := NewSelector(completer)

	articles := makeArticles(4)
	top := s.SelectTop(context.Background(), articles)

	require.Len(t, top, 3)
	assert.Equal(t, articles[1].Title, top[0].Title)
	assert.Equal(t, articles[0].Title, top[1].Title)
	assert.Equal(t, articles[2].Title, top[2].Title)
}

func TestSelectTop_CapsResultAtFive(t *testing.T) {
	// A chatty model may return more than 5 indices; the brief still holds
	// at most 5 articles.
	completer := &fakeCompleter{response: `{"top5_indices": [0, 1, 2, 3, 4, 5, 6]}`}
	s := NewSelector(completer)

	articles := makeArticles(7)
	top := s.SelectTop(context.Background(), articles)

	require.Len(t, top, 5)
	for i := range top {
		assert.Equal(t, articles[i].Title, top[i].Title)
	}
}

func TestSelectTop_OutOfRangeIndicesDoNotCountTowardCap(t *testing.T) {
	completer := &fakeCompleter{response: `{"top5_indices": [9, 9, 0, 1, 2, 3, 4]}`}
	s := NewSelector(completer)

	articles := makeArticles(5)
	top := s.SelectTop(context.Background(), articles)

	require.Len(t, top, 5)
	assert.Equal(t, articles[0].Title, top[0].Title)
	assert.Equal(t, articles[4].Title, top[4].Title)
}

func TestSelectTop_AllIndicesOutOfRangeYieldsEmptyBrief(t *testing.T) {
	completer := &fakeCompleter{response: `{"top5_indices": [10, 11, -3]}`}
	s := NewSelector(completer)

	top := s.SelectTop(context.Background(), makeArticles(3))

	assert.Empty(t, top)
}

func TestSelectTop_KeepsDuplicateIndices(t *testing.T) {
	completer := &fakeCompleter{response: `{"top5_indices": [1, 1, 0]}`}
	s := NewSelector(completer)

	articles := makeArticles(3)
	top := s.SelectTop(context.Background(), articles)

	require.Len(t, top, 3)
	assert.Equal(t, top[0].Title, top[1].Title)
}

func TestSelectTop_FallsBackToArrivalOrderOnCallError(t *testing.T) {
	completer := &fakeCompleter{err: errors.New("model unavailable")}
	s := NewSelector(completer)

	articles := makeArticles(7)
	top := s.SelectTop(context.Background(), articles)

	require.Len(t, top, 5)
	for i := range top {
		assert.Equal(t, articles[i].Title, top[i].Title)
	}
}

func TestSelectTop_FallsBackOnMalformedResponse(t *testing.T) {
	completer := &fakeCompleter{response: `not json at all`}
	s := NewSelector(completer)

	articles := makeArticles(3)
	top := s.SelectTop(context.Background(), articles)

	require.Len(t, top, 3)
	for i := range top {
		assert.Equal(t, articles[i].Title, top[i].Title)
	}
}

func TestSelectTop_EmptyInputMakesNoCall(t *testing.T) {
	completer := &fakeCompleter{response: `{"top5_indices": [0]}`}
	s := NewSelector(completer)

	top := s.SelectTop(context.Background(), nil)

	assert.Empty(t, top)
	assert.Equal(t, 0, completer.calls)
}
