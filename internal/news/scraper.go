// Package news scrapes headlines from configurable financial-news pages as
// an additional text feed for the scan pipeline.
package news

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"

	"trendfin/internal/logger"
	"trendfin/internal/store"
	"trendfin/internal/types"
)

// Scraper collects headline documents from a set of sources. Sources are
// pure configuration (URL plus CSS selectors), so adding one is a config
// change, not a code change.
type Scraper struct {
	sources []store.NewsSource
	timeout time.Duration
}

// NewScraper creates a scraper over the configured sources.
func NewScraper(sources []store.NewsSource, timeout time.Duration) *Scraper {
	return &Scraper{
		sources: sources,
		timeout: timeout,
	}
}

func (s *Scraper) Name() string {
	return "news"
}

// Collect scrapes every configured source. A failing source is logged and
// skipped.
func (s *Scraper) Collect(ctx context.Context) ([]types.Document, error) {
	docs := []types.Document{}

	for _, source := range s.sources {
		if err := ctx.Err(); err != nil {
			return docs, err
		}
		collected, err := s.scrapeSource(source)
		if err != nil {
			logger.ErrorWithErr(ctx, "Failed to scrape news source", err, "source", source.Name)
			continue
		}
		docs = append(docs, collected...)
		logger.Debug(ctx, "Scraped news source", "source", source.Name, "headlines", len(collected))
	}

	return docs, nil
}

func (s *Scraper) scrapeSource(source store.NewsSource) ([]types.Document, error) {
	docs := []types.Document{}

	c := colly.NewCollector(
		colly.AllowedDomains(domainOf(source.URL)),
		colly.MaxDepth(1),
	)
	c.SetRequestTimeout(s.timeout)

	c.OnRequest(func(r *colly.Request) {
		r.Headers.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	})

	c.OnHTML(source.Container, func(e *colly.HTMLElement) {
		title := firstText(e.DOM, source.Title)
		if title == "" {
			return
		}
		doc := types.Document{
			Source: "news/" + source.Name,
			Title:  title,
		}
		if source.Snippet != "" {
			doc.Body = firstText(e.DOM, source.Snippet)
		}
		docs = append(docs, doc)
	})

	if err := c.Visit(source.URL); err != nil {
		return nil, err
	}
	c.Wait()

	return docs, nil
}

// firstText returns the trimmed text of the first node matching selector.
func firstText(sel *goquery.Selection, selector string) string {
	return strings.TrimSpace(sel.Find(selector).First().Text())
}

func domainOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Host
}
