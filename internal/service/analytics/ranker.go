// internal/service/analytics/ranker.go

package analytics

import (
	"sort"

	"stylepulse/internal/domain/trend"
)

// RankerConfig contains configuration for the rising-tag ranker
type RankerConfig struct {
	// RecentWeeks is the width of the recent and prior comparison
	// windows in weeks
	RecentWeeks int

	// TopN limits how many rising tags are returned
	TopN int
}

// Ranker implements the trend.Ranker interface
type Ranker struct {
	config RankerConfig
}

// NewRanker creates a new ranker
func NewRanker(config RankerConfig) *Ranker {
	if config.RecentWeeks <= 0 {
		config.RecentWeeks = 2
	}
	if config.TopN <= 0 {
		config.TopN = 5
	}
	return &Ranker{config: config}
}

// Rising sums each tag's post counts over the most recent RecentWeeks
// observed weeks and the RecentWeeks before those, and ranks tags by
// the difference. Weeks a tag did not appear in count as zero, so the
// ranking degrades gracefully with fewer than two full windows of
// data. Ties break by tag name, keeping the result deterministic.
func (r *Ranker) Rising(buckets []trend.WeekBucket) []trend.RisingTag {
	weeks := Weeks(buckets)
	if len(weeks) == 0 {
		return []trend.RisingTag{}
	}

	recentStart := len(weeks) - r.config.RecentWeeks
	if recentStart < 0 {
		recentStart = 0
	}
	priorStart := recentStart - r.config.RecentWeeks
	if priorStart < 0 {
		priorStart = 0
	}

	window := func(start, end int) map[string]struct{} {
		set := map[string]struct{}{}
		for _, w := range weeks[start:end] {
			set[w] = struct{}{}
		}
		return set
	}
	recentWeeks := window(recentStart, len(weeks))
	priorWeeks := window(priorStart, recentStart)

	recent := map[string]int{}
	prior := map[string]int{}
	tags := map[string]struct{}{}
	for _, b := range buckets {
		tags[b.Tag] = struct{}{}
		if _, ok := recentWeeks[b.Week]; ok {
			recent[b.Tag] += b.Posts
		}
		if _, ok := priorWeeks[b.Week]; ok {
			prior[b.Tag] += b.Posts
		}
	}

	rising := make([]trend.RisingTag, 0, len(tags))
	for tag := range tags {
		rising = append(rising, trend.RisingTag{
			Tag:    tag,
			Recent: recent[tag],
			Prior:  prior[tag],
			Delta:  recent[tag] - prior[tag],
		})
	}

	sort.Slice(rising, func(i, j int) bool {
		if rising[i].Delta != rising[j].Delta {
			return rising[i].Delta > rising[j].Delta
		}
		return rising[i].Tag < rising[j].Tag
	})

	if len(rising) > r.config.TopN {
		rising = rising[:r.config.TopN]
	}
	return rising
}
