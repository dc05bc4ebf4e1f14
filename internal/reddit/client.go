// Package reddit is a thin client for the public Reddit JSON API. It only
// supplies raw text to the scan pipeline; no parsing logic lives here.
package reddit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
)

const baseURL = "https://www.reddit.com"

// Post is a submission as returned by the listing endpoints.
type Post struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Selftext    string  `json:"selftext"`
	Subreddit   string  `json:"subreddit"`
	Author      string  `json:"author"`
	Score       int     `json:"score"`
	NumComments int     `json:"num_comments"`
	CreatedUTC  float64 `json:"created_utc"`
	Stickied    bool    `json:"stickied"`
}

// Comment is a single comment body.
type Comment struct {
	ID         string  `json:"id"`
	Body       string  `json:"body"`
	Author     string  `json:"author"`
	Score      int     `json:"score"`
	CreatedUTC float64 `json:"created_utc"`
}

type listing struct {
	Kind string `json:"kind"`
	Data struct {
		After    string `json:"after"`
		Children []struct {
			Kind string `json:"kind"`
			Data struct {
				Post
				Body string `json:"body"`
			} `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

// Client talks to the Reddit JSON API.
type Client struct {
	http *resty.Client
}

// NewClient creates a Reddit client with the given request timeout.
func NewClient(timeout time.Duration) *Client {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetTimeout(timeout)
	client.SetHeader("User-Agent", "trendfin/1.0 (social ticker trend scanner)")

	return &Client{http: client}
}

// HotPosts returns up to limit posts from a subreddit's hot listing,
// stickied mod posts excluded.
func (c *Client) HotPosts(ctx context.Context, subreddit string, limit int) ([]Post, error) {
	if limit <= 0 || limit > 100 {
		limit = 25
	}

	var out listing
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"limit":    strconv.Itoa(limit),
			"raw_json": "1",
		}).
		SetResult(&out).
		Get(fmt.Sprintf("/r/%s/hot.json", subreddit))
	if err != nil {
		return nil, fmt.Errorf("fetch hot posts for r/%s: %w", subreddit, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("reddit returned %d for r/%s", resp.StatusCode(), subreddit)
	}

	posts := []Post{}
	for _, child := range out.Data.Children {
		if child.Kind != "t3" || child.Data.Stickied {
			continue
		}
		posts = append(posts, child.Data.Post)
	}
	return posts, nil
}

// Comments returns up to limit top-level comments of a post.
func (c *Client) Comments(ctx context.Context, subreddit, postID string, limit int) ([]Comment, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	// The comments endpoint returns two listings: the post, then the tree.
	var out []listing
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"limit":    strconv.Itoa(limit),
			"depth":    "1",
			"raw_json": "1",
		}).
		SetResult(&out).
		Get(fmt.Sprintf("/r/%s/comments/%s.json", subreddit, postID))
	if err != nil {
		return nil, fmt.Errorf("fetch comments for %s: %w", postID, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("reddit returned %d for post %s", resp.StatusCode(), postID)
	}
	if len(out) < 2 {
		return []Comment{}, nil
	}

	comments := []Comment{}
	for _, child := range out[1].Data.Children {
		if child.Kind != "t1" || child.Data.Body == "" {
			continue
		}
		comments = append(comments, Comment{
			ID:         child.Data.ID,
			Body:       child.Data.Body,
			Author:     child.Data.Author,
			Score:      child.Data.Score,
			CreatedUTC: child.Data.CreatedUTC,
		})
	}
	return comments, nil
}
