// internal/service/tagging/tagger.go

package tagging

import (
	"regexp"
	"sort"
	"strings"

	"stylepulse/internal/domain/post"
)

var (
	urlPattern     = regexp.MustCompile(`http\S+|www\.\S+`)
	hashtagPattern = regexp.MustCompile(`#(\w+)`)
	wordPattern    = regexp.MustCompile(`[a-z]+`)
)

// Tagger matches post text against the keyword vocabulary
type Tagger struct {
	vocabulary Vocabulary
	words      map[string]struct{}
}

// NewTagger creates a new tagger for the given vocabulary
func NewTagger(vocabulary Vocabulary) *Tagger {
	return &Tagger{
		vocabulary: vocabulary,
		words:      vocabulary.All(),
	}
}

// Vocabulary returns the vocabulary the tagger matches against
func (t *Tagger) Vocabulary() Vocabulary {
	return t.vocabulary
}

// CleanText strips URLs from post text and trims whitespace
func CleanText(s string) string {
	return strings.TrimSpace(urlPattern.ReplaceAllString(s, ""))
}

// Engagement computes the engagement proxy: likes + 0.1 * views
func Engagement(likes, views int) float64 {
	return float64(likes) + 0.1*float64(views)
}

// Tags extracts the sorted, de-duplicated vocabulary tags matched in
// the text. Matching is case-insensitive and considers both hashtag
// tokens and plain word tokens; a post may match zero tags.
func (t *Tagger) Tags(text string) []string {
	cleaned := strings.ToLower(CleanText(text))

	seen := map[string]struct{}{}
	for _, m := range hashtagPattern.FindAllStringSubmatch(cleaned, -1) {
		if _, ok := t.words[m[1]]; ok {
			seen[m[1]] = struct{}{}
		}
	}
	for _, token := range wordPattern.FindAllString(cleaned, -1) {
		if _, ok := t.words[token]; ok {
			seen[token] = struct{}{}
		}
	}

	tags := make([]string, 0, len(seen))
	for tag := range seen {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Tag enriches a post with its matched tags and engagement score.
// Sentiment is attached separately by the pipeline when enabled.
func (t *Tagger) Tag(p post.Post) post.TaggedPost {
	return post.TaggedPost{
		Post:       p,
		Tags:       t.Tags(p.Text),
		Engagement: Engagement(p.Likes, p.Views),
	}
}
