// Package runner drives the batch lookup: fetch each company's site,
// extract phone candidates, pick one, and persist checkpoints.
package runner

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/telsuche/telsuche/internal/fetcher"
	"github.com/telsuche/telsuche/internal/input"
	"github.com/telsuche/telsuche/internal/logger"
	"github.com/telsuche/telsuche/internal/navigator"
	"github.com/telsuche/telsuche/internal/output"
	"github.com/telsuche/telsuche/internal/phone"
)

// Runner processes companies sequentially.
type Runner struct {
	fetcher  fetcher.Fetcher
	finder   *navigator.Finder
	config   Config
	snapshot *output.Snapshot
}

// Summary reports how a run went.
type Summary struct {
	Total     int
	Processed int
	Found     int
}

// New creates a runner after validating the configuration.
func New(f fetcher.Fetcher, cfg Config) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Runner{
		fetcher:  f,
		finder:   navigator.NewFinder(),
		config:   cfg,
		snapshot: &output.Snapshot{Path: cfg.OutputPath, Format: cfg.Format},
	}, nil
}

// Run processes every company in order. Fetch failures are recorded as
// "no phone found", never fatal. The result table is checkpointed every
// CheckpointEvery companies and once at the end; on cancellation the
// rows completed so far are persisted and the context error returned.
func (r *Runner) Run(ctx context.Context, companies []input.Company) (Summary, error) {
	summary := Summary{Total: len(companies)}
	rows := make([]output.Row, 0, len(companies))

	for i, company := range companies {
		if ctx.Err() != nil {
			break
		}

		number := r.findPhone(ctx, company.Website)

		rows = append(rows, output.Row{
			CompanyName: company.Name,
			Website:     company.Website,
			Phone:       number,
		})
		summary.Processed++
		if number != "" {
			summary.Found++
			logger.Info("phone found", "progress", progress(i, summary.Total), "company", company.Name, "phone", number)
		} else {
			logger.Info("no phone found", "progress", progress(i, summary.Total), "company", company.Name)
		}

		if (i+1)%r.config.CheckpointEvery == 0 {
			if err := r.snapshot.Write(rows); err != nil {
				return summary, err
			}
			logger.Info("progress saved", "processed", i+1, "total", summary.Total)
		}

		if i+1 < len(companies) {
			sleepCtx(ctx, r.config.Delay)
		}
	}

	if err := r.snapshot.Write(rows); err != nil {
		return summary, err
	}
	logger.Info("completed", "processed", summary.Processed, "found", summary.Found)

	return summary, ctx.Err()
}

// findPhone fetches the company site and returns the selected number,
// or "" when nothing usable was found.
func (r *Runner) findPhone(ctx context.Context, website string) string {
	page, err := r.fetchSite(ctx, website)
	if err != nil {
		logger.Warn("site unreachable", "website", website, "error", err)
		return ""
	}

	candidates := phone.Extract(r.capText(page.Text))

	// Fall back to contact-like pages when the main page has nothing
	if len(candidates) == 0 {
		links, err := r.finder.ContactLinks(page.HTML, page.URL)
		if err != nil {
			logger.Debug("contact link scan failed", "website", website, "error", err)
		}
		if len(links) > r.config.MaxContactPages {
			links = links[:r.config.MaxContactPages]
		}
		for _, link := range links {
			if ctx.Err() != nil {
				break
			}
			if !navigator.IsSameDomain(page.URL, link) {
				logger.Debug("contact link leaves the site", "url", link)
			}
			logger.Info("trying contact page", "url", link)
			contactPage, err := r.fetcher.Fetch(ctx, link)
			if err != nil {
				logger.Warn("contact page fetch failed", "url", link, "error", err)
				continue
			}
			candidates = phone.Extract(r.capText(contactPage.Text))
			if len(candidates) > 0 {
				break
			}
			sleepCtx(ctx, r.config.PageDelay)
		}
	}

	best, ok := phone.SelectBest(candidates)
	if !ok {
		return ""
	}
	return best
}

// fetchSite tries the website over HTTPS first and falls back to plain
// HTTP when that fails.
func (r *Runner) fetchSite(ctx context.Context, website string) (fetcher.Page, error) {
	var page fetcher.Page
	var err error
	for _, candidate := range schemeCandidates(website) {
		logger.Info("scraping", "url", candidate)
		page, err = r.fetcher.Fetch(ctx, candidate)
		if err == nil {
			return page, nil
		}
		logger.Warn("fetch failed", "url", candidate, "error", err)
		if ctx.Err() != nil {
			break
		}
	}
	return page, err
}

// schemeCandidates returns the URLs to try for a roster website entry,
// HTTPS before HTTP.
func schemeCandidates(website string) []string {
	trimmed := strings.TrimPrefix(website, "https://")
	trimmed = strings.TrimPrefix(trimmed, "http://")
	return []string{"https://" + trimmed, "http://" + trimmed}
}

// capText truncates page text to the configured extraction budget.
func (r *Runner) capText(text string) string {
	if r.config.MaxContentSize > 0 && len(text) > r.config.MaxContentSize {
		return text[:r.config.MaxContentSize]
	}
	return text
}

func progress(i, total int) string {
	return fmt.Sprintf("%d/%d", i+1, total)
}

// sleepCtx pauses for d unless the context is canceled first.
func sleepCtx(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
