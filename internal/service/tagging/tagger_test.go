package tagging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngagementScore(t *testing.T) {
	cases := []struct {
		likes, views int
		want         float64
	}{
		{0, 0, 0},
		{10, 0, 10},
		{0, 250, 25},
		{10, 250, 35},
		{3, 7, 3.7},
		{1000000, 1, 1000000.1},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Engagement(tc.likes, tc.views))
	}
}

func TestTagsMatchesVocabularyWords(t *testing.T) {
	tagger := NewTagger(DefaultVocabulary())

	tags := tagger.Tags("Loving this denim jacket with pastel accents, so cozy")
	assert.Equal(t, []string{"cozy", "denim", "pastel"}, tags)
}

func TestTagsIsCaseInsensitive(t *testing.T) {
	tagger := NewTagger(DefaultVocabulary())

	assert.Equal(t, []string{"denim", "red"}, tagger.Tags("RED Denim everywhere"))
}

func TestTagsExtractsHashtags(t *testing.T) {
	tagger := NewTagger(DefaultVocabulary())

	tags := tagger.Tags("new fit #linen #minimal #notavocabword")
	assert.Equal(t, []string{"linen", "minimal"}, tags)
}

func TestTagsIgnoresURLs(t *testing.T) {
	tagger := NewTagger(DefaultVocabulary())

	// "red" appears only inside the URLs, so it must not match
	tags := tagger.Tags("check this http://shop.example/red-dress and www.red.example")
	assert.Empty(t, tags)
}

func TestTagsDeduplicates(t *testing.T) {
	tagger := NewTagger(DefaultVocabulary())

	tags := tagger.Tags("denim denim #denim DENIM")
	assert.Equal(t, []string{"denim"}, tags)
}

func TestTagsMayBeEmpty(t *testing.T) {
	tagger := NewTagger(DefaultVocabulary())

	assert.Empty(t, tagger.Tags("nothing matches here"))
	assert.Empty(t, tagger.Tags(""))
}

func TestEveryTagComesFromTheVocabulary(t *testing.T) {
	vocabulary := DefaultVocabulary()
	tagger := NewTagger(vocabulary)

	captions := []string{
		"pastel knit vibes #cozy",
		"bold leather look, very edgy",
		"#floral #romantic picnic fit",
		"casual white linen for summer",
		"random caption without keywords",
	}
	for _, caption := range captions {
		for _, tag := range tagger.Tags(caption) {
			assert.True(t, vocabulary.Contains(tag), "tag %q not in vocabulary", tag)
		}
	}
}

func TestCleanText(t *testing.T) {
	assert.Equal(t, "look at this", CleanText("  look at this http://a.example/x "))
	assert.Equal(t, "", CleanText(""))
}

func TestLoadVocabularyOverridesLists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.yaml")
	require.NoError(t, os.WriteFile(path, []byte("colors:\n  - crimson\n"), 0644))

	vocabulary, err := LoadVocabulary(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"crimson"}, vocabulary.Colors)
	// Lists omitted from the file keep their defaults
	assert.Equal(t, DefaultVocabulary().Styles, vocabulary.Styles)
	assert.True(t, vocabulary.Contains("crimson"))
	assert.False(t, vocabulary.Contains("red"))
}

func TestLoadVocabularyMissingFile(t *testing.T) {
	_, err := LoadVocabulary(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
