package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dailybrief/internal/news"
)

func TestDecodeJSON_PlainObject(t *testing.T) {
	var a news.Analysis
	err := DecodeJSON(`{"summary_2lines": "s", "why_it_matters": "w", "market_impact": "m", "category": "Tech"}`, &a)

	require.NoError(t, err)
	assert.Equal(t, "s", a.SummaryTwoLines)
	assert.Equal(t, "Tech", a.Category)
}

func TestDecodeJSON_StripsMarkdownFences(t *testing.T) {
	raw := "```json\n{\"summary_2lines\": \"s\", \"category\": \"Markets\"}\n```"

	var a news.Analysis
	require.NoError(t, DecodeJSON(raw, &a))
	assert.Equal(t, "Markets", a.Category)
}

func TestDecodeJSON_RepairsMissingKeyQuote(t *testing.T) {
	raw := `{summary_2lines": "s", category": "Economy"}`

	var a news.Analysis
	require.NoError(t, DecodeJSON(raw, &a))
	assert.Equal(t, "s", a.SummaryTwoLines)
	assert.Equal(t, "Economy", a.Category)
}

func TestDecodeJSON_RejectsGarbage(t *testing.T) {
	var a news.Analysis
	assert.Error(t, DecodeJSON("the model refused to answer", &a))
}

func TestRepairJSON_LeavesValidJSONAlone(t *testing.T) {
	in := `{"a": 1, "b": [true, false], "c": {"d": "x,y"}}`
	assert.Equal(t, in, repairJSON(in))
}
