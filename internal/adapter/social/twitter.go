// internal/adapter/social/twitter.go

package social

import (
	"context"
	"fmt"
	"net/http"
	"time"

	twitter "github.com/g8rswimmer/go-twitter/v2"

	"stylepulse/internal/domain/post"
)

// authorize adds bearer-token auth to Twitter API requests
type authorize struct {
	token string
}

func (a authorize) Add(req *http.Request) {
	req.Header.Add("Authorization", "Bearer "+a.token)
}

// TwitterClient fetches recent posts from the Twitter search API and
// maps them to the pipeline's input schema
type TwitterClient struct {
	client *twitter.Client
}

// NewTwitterClient creates a new Twitter client
func NewTwitterClient(bearerToken string) (*TwitterClient, error) {
	if bearerToken == "" {
		return nil, fmt.Errorf("twitter bearer token not configured")
	}

	return &TwitterClient{
		client: &twitter.Client{
			Authorizer: authorize{token: bearerToken},
			Client: &http.Client{
				Timeout: 10 * time.Second,
			},
			Host: "https://api.twitter.com",
		},
	}, nil
}

// RecentPosts runs a recent search for the query and returns the
// results as posts. Impressions stand in for views; platforms without
// view counts report zero.
func (c *TwitterClient) RecentPosts(ctx context.Context, query string, maxResults int) ([]post.Post, error) {
	opts := twitter.TweetRecentSearchOpts{
		MaxResults: maxResults,
		TweetFields: []twitter.TweetField{
			twitter.TweetFieldCreatedAt,
			twitter.TweetFieldPublicMetrics,
		},
	}

	resp, err := c.client.TweetRecentSearch(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("error searching tweets: %w", err)
	}

	posts := make([]post.Post, 0, len(resp.Raw.Tweets))
	for _, tweet := range resp.Raw.Tweets {
		created, err := time.Parse(time.RFC3339, tweet.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error parsing created_at for tweet %s: %w", tweet.ID, err)
		}

		p := post.Post{
			Date:     created,
			Platform: "twitter",
			PostID:   tweet.ID,
			Text:     tweet.Text,
		}
		if tweet.PublicMetrics != nil {
			p.Likes = tweet.PublicMetrics.Likes
			p.Views = tweet.PublicMetrics.Impressions
		}
		posts = append(posts, p)
	}

	return posts, nil
}
