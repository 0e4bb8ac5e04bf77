package brief

import (
	"time"

	"dailybrief/internal/news"
)

// The output timestamp is pinned to UTC+9 regardless of where the run
// executes.
var jst = time.FixedZone("JST", 9*60*60)

const timestampLayout = "2006-01-02 15:04"

// Categorize partitions articles into one bucket per brief category,
// preserving input order within each bucket. Articles whose category matches
// no bucket are excluded from all of them. Pure function of its input.
func Categorize(articles []news.Article) map[string][]news.Article {
	buckets := make(map[string][]news.Article, len(news.BriefCategories))
	for _, c := range news.BriefCategories {
		buckets[c] = []news.Article{}
	}
	for _, a := range articles {
		if _, ok := buckets[a.Category]; ok {
			buckets[a.Category] = append(buckets[a.Category], a)
		}
	}
	return buckets
}

// Assemble builds the final brief document from the enriched set and the
// ranked top picks.
func Assemble(articles, top []news.Article, now time.Time) news.Brief {
	if top == nil {
		top = []news.Article{}
	}
	return news.Brief{
		GeneratedAt: now.In(jst).Format(timestampLayout),
		TodaysBrief: top,
		Categories:  Categorize(articles),
	}
}
