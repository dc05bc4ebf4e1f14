package reddit

import (
	"context"
	"fmt"

	"trendfin/internal/logger"
	"trendfin/internal/types"
)

// Source adapts the client to the scan pipeline's TextSource contract:
// post titles, post bodies, and comment bodies from a set of subreddits.
type Source struct {
	client       *Client
	subreddits   []string
	postLimit    int
	commentLimit int
}

// NewSource builds a text source over the given subreddits. commentLimit 0
// skips comment collection.
func NewSource(client *Client, subreddits []string, postLimit, commentLimit int) *Source {
	return &Source{
		client:       client,
		subreddits:   subreddits,
		postLimit:    postLimit,
		commentLimit: commentLimit,
	}
}

func (s *Source) Name() string {
	return "reddit"
}

// Collect fetches hot posts (and their comments) from every configured
// subreddit. A failing subreddit is logged and skipped; the scan runs on
// whatever text was retrievable.
func (s *Source) Collect(ctx context.Context) ([]types.Document, error) {
	docs := []types.Document{}

	for _, sub := range s.subreddits {
		posts, err := s.client.HotPosts(ctx, sub, s.postLimit)
		if err != nil {
			logger.ErrorWithErr(ctx, "Failed to collect subreddit", err, "subreddit", sub)
			continue
		}

		for _, post := range posts {
			docs = append(docs, types.Document{
				Source: fmt.Sprintf("reddit/%s", sub),
				ID:     post.ID,
				Title:  post.Title,
				Body:   post.Selftext,
			})

			if s.commentLimit <= 0 {
				continue
			}
			comments, err := s.client.Comments(ctx, sub, post.ID, s.commentLimit)
			if err != nil {
				logger.ErrorWithErr(ctx, "Failed to collect comments", err, "subreddit", sub, "post", post.ID)
				continue
			}
			for _, c := range comments {
				docs = append(docs, types.Document{
					Source: fmt.Sprintf("reddit/%s", sub),
					ID:     c.ID,
					Body:   c.Body,
				})
			}
		}
	}

	return docs, nil
}
