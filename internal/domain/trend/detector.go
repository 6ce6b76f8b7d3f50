// internal/domain/trend/detector.go

package trend

import (
	"stylepulse/internal/domain/post"
)

// Aggregator defines the interface for grouping tagged posts into
// per-week, per-tag buckets
type Aggregator interface {
	// Aggregate groups tagged posts by (ISO week, tag) and computes
	// count, mean engagement and mean sentiment per bucket
	Aggregate(posts []post.TaggedPost) []WeekBucket

	// TopEngagement returns the n tags with the highest mean weekly
	// average engagement
	TopEngagement(buckets []WeekBucket, n int) []TagEngagement
}

// Ranker defines the interface for ranking rising tags
type Ranker interface {
	// Rising compares each tag's recent-week counts against the prior
	// window and returns the tags with the largest increase
	Rising(buckets []WeekBucket) []RisingTag
}
