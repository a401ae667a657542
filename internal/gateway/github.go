// Package gateway provides a gateway to the GitHub search API,
// abstracting away the underlying REST client.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"

	"github.com/gofri/go-github-ratelimit/github_ratelimit"

	"github.com/aknsh/devtools/internal/domain"
)

// Sentinel errors used to classify search failures. Callers match them with
// errors.Is; the wrapped message carries the upstream detail.
var (
	// ErrRateLimited signals that the API reported quota exhaustion.
	ErrRateLimited = errors.New("rate limit exceeded")
	// ErrAPI signals a non-2xx response that is not a rate-limit signal.
	ErrAPI = errors.New("api error")
	// ErrNetwork signals a transport failure before any response arrived.
	ErrNetwork = errors.New("network error")
)

// The search API serves at most 100 results per page.
const maxPerPage = 100

// Searcher defines the behavior of a gateway for finding repositories.
type Searcher interface {
	SearchRepositories(ctx context.Context, dateRange domain.DateRange, language string, count int) ([]domain.Repository, error)
}

// GitHubGateway is the concrete implementation of the Searcher interface.
type GitHubGateway struct {
	client *github.Client
	logger *log.Logger
}

var _ Searcher = (*GitHubGateway)(nil)

// NewGitHubGateway is a constructor that creates a new instance of GitHubGateway.
// When token is empty the client is unauthenticated, which the API allows at a
// lower rate limit.
func NewGitHubGateway(token string, logger *log.Logger) (*GitHubGateway, error) {
	rateLimitWaiter, err := github_ratelimit.NewRateLimitWaiter(nil, github_ratelimit.WithSingleSleepLimit(1*time.Hour, nil))
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limit waiter: %w", err)
	}
	httpClient := &http.Client{Transport: rateLimitWaiter}
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient.Transport = &oauth2.Transport{
			Base:   rateLimitWaiter,
			Source: ts,
		}
	}
	return &GitHubGateway{
		client: github.NewClient(httpClient),
		logger: logger,
	}, nil
}

// SearchRepositories returns up to count repositories created inside dateRange,
// most-starred first. The API sorts server-side by stars and caps each page at
// 100 results, so the gateway pages until it has enough records or the result
// set runs out.
func (g *GitHubGateway) SearchRepositories(ctx context.Context, dateRange domain.DateRange, language string, count int) ([]domain.Repository, error) {
	query := dateRange.Query()
	if language != "" {
		query = fmt.Sprintf("%s language:%s", query, language)
	}
	g.logger.Printf("Searching repositories with query: %s", query)

	perPage := count
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	opts := &github.SearchOptions{
		Sort:        "stars",
		Order:       "desc",
		ListOptions: github.ListOptions{PerPage: perPage},
	}

	var repos []domain.Repository
	for {
		result, resp, err := g.client.Search.Repositories(ctx, query, opts)
		if err != nil {
			return nil, classify(err)
		}
		for _, repo := range result.Repositories {
			repos = append(repos, domain.Repository{
				Name:        repo.GetName(),
				Owner:       repo.GetOwner().GetLogin(),
				FullName:    repo.GetFullName(),
				Stars:       repo.GetStargazersCount(),
				Language:    repo.GetLanguage(),
				URL:         repo.GetHTMLURL(),
				Description: repo.GetDescription(),
				CreatedAt:   repo.GetCreatedAt().Time,
			})
		}
		if len(repos) >= count || resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
		g.logger.Println("  Fetching next page of repositories...")
	}
	g.logger.Printf("Completed search, %d repositories fetched.", len(repos))
	return repos, nil
}

// classify maps go-github errors onto the gateway's sentinel errors.
func classify(err error) error {
	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) {
		return fmt.Errorf("%w: %d of %d requests remaining, resets at %s",
			ErrRateLimited, rateErr.Rate.Remaining, rateErr.Rate.Limit,
			rateErr.Rate.Reset.Format(time.RFC3339))
	}
	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		if abuseErr.RetryAfter != nil {
			return fmt.Errorf("%w: secondary limit, retry after %s", ErrRateLimited, *abuseErr.RetryAfter)
		}
		return fmt.Errorf("%w: secondary limit", ErrRateLimited)
	}
	var respErr *github.ErrorResponse
	if errors.As(err, &respErr) {
		return fmt.Errorf("%w: %s", ErrAPI, respErr.Message)
	}
	return fmt.Errorf("%w: %v", ErrNetwork, err)
}
