package post

import (
	"fmt"
	"time"
)

// Post is a single social-media post as loaded from the input CSV.
// Immutable once loaded.
type Post struct {
	Date     time.Time `json:"date"`
	Platform string    `json:"platform"`
	PostID   string    `json:"post_id"`
	Text     string    `json:"text"`
	Likes    int       `json:"likes"`
	Views    int       `json:"views"`
}

// TaggedPost is a post enriched with the vocabulary tags matched in its
// text, an engagement score and an optional sentiment score.
type TaggedPost struct {
	Post
	Tags       []string `json:"tags"`       // sorted, unique, drawn from the vocabulary
	Engagement float64  `json:"engagement"` // likes + 0.1 * views
	Sentiment  *float64 `json:"sentiment"`  // compound polarity in [-1, 1], nil when disabled
}

// Week returns the ISO year-week label for the post date, e.g. "2025-W27".
func (p Post) Week() string {
	year, week := p.Date.ISOWeek()
	return fmt.Sprintf("%04d-W%02d", year, week)
}
