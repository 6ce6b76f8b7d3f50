// internal/service/analytics/aggregator.go

package analytics

import (
	"sort"

	"stylepulse/internal/domain/post"
	"stylepulse/internal/domain/trend"
)

// Aggregator implements the trend.Aggregator interface
type Aggregator struct {
}

// NewAggregator creates a new aggregator
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// Aggregate groups tagged posts by (ISO week, tag) and computes count,
// mean engagement and mean sentiment per bucket. The result is sorted
// by week, then tag, so output is deterministic across runs.
func (a *Aggregator) Aggregate(posts []post.TaggedPost) []trend.WeekBucket {
	type bucketKey struct {
		week string
		tag  string
	}
	type bucketAcc struct {
		posts         int
		engagementSum float64
		sentimentSum  float64
		sentimentN    int
	}

	accs := map[bucketKey]*bucketAcc{}
	for _, tp := range posts {
		week := tp.Week()
		for _, tag := range tp.Tags {
			key := bucketKey{week: week, tag: tag}
			acc, ok := accs[key]
			if !ok {
				acc = &bucketAcc{}
				accs[key] = acc
			}
			acc.posts++
			acc.engagementSum += tp.Engagement
			if tp.Sentiment != nil {
				acc.sentimentSum += *tp.Sentiment
				acc.sentimentN++
			}
		}
	}

	buckets := make([]trend.WeekBucket, 0, len(accs))
	for key, acc := range accs {
		bucket := trend.WeekBucket{
			Week:          key.week,
			Tag:           key.tag,
			Posts:         acc.posts,
			AvgEngagement: acc.engagementSum / float64(acc.posts),
		}
		if acc.sentimentN > 0 {
			avg := acc.sentimentSum / float64(acc.sentimentN)
			bucket.AvgSentiment = &avg
		}
		buckets = append(buckets, bucket)
	}

	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].Week != buckets[j].Week {
			return buckets[i].Week < buckets[j].Week
		}
		return buckets[i].Tag < buckets[j].Tag
	})

	return buckets
}

// TopEngagement returns the n tags with the highest mean of their
// weekly average engagement, highest first. Ties break by tag name.
func (a *Aggregator) TopEngagement(buckets []trend.WeekBucket, n int) []trend.TagEngagement {
	sums := map[string]float64{}
	weeks := map[string]int{}
	for _, b := range buckets {
		sums[b.Tag] += b.AvgEngagement
		weeks[b.Tag]++
	}

	ranked := make([]trend.TagEngagement, 0, len(sums))
	for tag, sum := range sums {
		ranked = append(ranked, trend.TagEngagement{
			Tag:           tag,
			AvgEngagement: sum / float64(weeks[tag]),
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].AvgEngagement != ranked[j].AvgEngagement {
			return ranked[i].AvgEngagement > ranked[j].AvgEngagement
		}
		return ranked[i].Tag < ranked[j].Tag
	})

	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// Weeks returns the distinct week labels observed in the buckets, in
// ascending order. ISO labels sort correctly as strings.
func Weeks(buckets []trend.WeekBucket) []string {
	seen := map[string]struct{}{}
	weeks := []string{}
	for _, b := range buckets {
		if _, ok := seen[b.Week]; !ok {
			seen[b.Week] = struct{}{}
			weeks = append(weeks, b.Week)
		}
	}
	sort.Strings(weeks)
	return weeks
}
