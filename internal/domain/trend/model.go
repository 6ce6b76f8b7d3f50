package trend

import (
	"time"
)

// WeekBucket aggregates every match of one tag within one ISO week.
// Buckets are produced by aggregation and never mutated afterward.
type WeekBucket struct {
	Week          string   `json:"week"`
	Tag           string   `json:"tag"`
	Posts         int      `json:"posts"`
	AvgEngagement float64  `json:"avg_engagement"`
	AvgSentiment  *float64 `json:"avg_sentiment,omitempty"`
}

// RisingTag describes how a tag's post count moved between the two most
// recent observed weeks and the two weeks before that.
type RisingTag struct {
	Tag    string `json:"tag"`
	Recent int    `json:"recent"`
	Prior  int    `json:"prior"`
	Delta  int    `json:"delta"`
}

// TagEngagement is a tag ranked by its mean weekly average engagement.
type TagEngagement struct {
	Tag           string  `json:"tag"`
	AvgEngagement float64 `json:"avg_engagement"`
}

// TagSeries is one tag's post counts over a run's observed weeks,
// zero-filled for weeks the tag did not appear in.
type TagSeries struct {
	Tag   string   `json:"tag"`
	Weeks []string `json:"weeks"`
	Posts []int    `json:"posts"`
}

// Filter defines criteria for filtering week buckets
type Filter struct {
	Tag      string
	Week     string
	MinPosts int
}

// Snapshot is the complete result of one pipeline run over a dataset.
type Snapshot struct {
	RunID            string       `json:"run_id"`
	InputFile        string       `json:"input_file"`
	GeneratedAt      time.Time    `json:"generated_at"`
	SentimentEnabled bool         `json:"sentiment_enabled"`
	Weeks            []string     `json:"weeks"`   // distinct observed weeks, ascending
	Buckets          []WeekBucket `json:"buckets"` // sorted by (week, tag)
	Rising           []RisingTag  `json:"rising"`
}

// FilterBuckets returns the buckets matching the filter criteria.
func (s *Snapshot) FilterBuckets(f Filter) []WeekBucket {
	matched := []WeekBucket{}
	for _, b := range s.Buckets {
		if f.Tag != "" && b.Tag != f.Tag {
			continue
		}
		if f.Week != "" && b.Week != f.Week {
			continue
		}
		if b.Posts < f.MinPosts {
			continue
		}
		matched = append(matched, b)
	}
	return matched
}

// Series returns the weekly post counts for a tag across all observed
// weeks. The second return value is false if the tag never occurred.
func (s *Snapshot) Series(tag string) (TagSeries, bool) {
	counts := make([]int, len(s.Weeks))
	index := make(map[string]int, len(s.Weeks))
	for i, w := range s.Weeks {
		index[w] = i
	}

	found := false
	for _, b := range s.Buckets {
		if b.Tag != tag {
			continue
		}
		found = true
		if i, ok := index[b.Week]; ok {
			counts[i] = b.Posts
		}
	}

	if !found {
		return TagSeries{}, false
	}
	return TagSeries{Tag: tag, Weeks: s.Weeks, Posts: counts}, true
}

// TotalMatches returns the number of (post, tag) matches in the run.
func (s *Snapshot) TotalMatches() int {
	total := 0
	for _, b := range s.Buckets {
		total += b.Posts
	}
	return total
}
