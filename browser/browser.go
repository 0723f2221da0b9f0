package browser

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrNotFound = errors.New("element not found")

// Locator is one way of finding an element on the page. Query is either a
// CSS selector or an XPath expression (anything starting with "/" or "(").
type Locator struct {
	Name    string        `yaml:"name"`
	Query   string        `yaml:"query"`
	Timeout time.Duration `yaml:"timeout"`
}

func (l Locator) String() string {
	if l.Name != "" {
		return l.Name
	}
	return l.Query
}

// IsXPath reports whether the query must be evaluated as XPath.
func (l Locator) IsXPath() bool {
	return strings.HasPrefix(l.Query, "/") || strings.HasPrefix(l.Query, "(")
}

// Page is a single exclusive browser tab. Every method waits at most the
// locator's timeout (or until ctx is done) for the element to be visible.
type Page interface {
	Navigate(ctx context.Context, url string) error
	WaitVisible(ctx context.Context, loc Locator) error
	Click(ctx context.Context, loc Locator) error
	Type(ctx context.Context, loc Locator, text string) error
	Text(ctx context.Context, loc Locator) (string, error)
	Texts(ctx context.Context, loc Locator) ([]string, error)
	Close() error
}

// Launcher starts a fresh browser context. The caller owns the returned page
// and must close it.
type Launcher interface {
	Launch(ctx context.Context) (Page, error)
}

// Chain is an ordered list of locator strategies for the same element. They
// are tried in order until one becomes visible.
type Chain []Locator

// First returns the first locator of the chain whose element becomes visible.
func (c Chain) First(ctx context.Context, p Page) (Locator, error) {
	if len(c) == 0 {
		return Locator{}, fmt.Errorf("%w: empty locator chain", ErrNotFound)
	}

	tried := make([]string, 0, len(c))

	for _, loc := range c {
		if err := ctx.Err(); err != nil {
			return Locator{}, err
		}

		if err := p.WaitVisible(ctx, loc); err == nil {
			return loc, nil
		}

		tried = append(tried, loc.String())
	}

	return Locator{}, fmt.Errorf("%w: tried %s", ErrNotFound, strings.Join(tried, ", "))
}

func (c Chain) Click(ctx context.Context, p Page) error {
	loc, err := c.First(ctx, p)
	if err != nil {
		return err
	}
	return p.Click(ctx, loc)
}

func (c Chain) Type(ctx context.Context, p Page, text string) error {
	loc, err := c.First(ctx, p)
	if err != nil {
		return err
	}
	return p.Type(ctx, loc, text)
}

func (c Chain) Text(ctx context.Context, p Page) (string, error) {
	loc, err := c.First(ctx, p)
	if err != nil {
		return "", err
	}
	return p.Text(ctx, loc)
}

func (c Chain) Texts(ctx context.Context, p Page) ([]string, error) {
	loc, err := c.First(ctx, p)
	if err != nil {
		return nil, err
	}
	return p.Texts(ctx, loc)
}

// Expand returns a copy of the chain with the placeholder/value pairs
// substituted in every query.
func (c Chain) Expand(pairs ...string) Chain {
	r := strings.NewReplacer(pairs...)
	out := make(Chain, len(c))

	for i, loc := range c {
		loc.Query = r.Replace(loc.Query)
		out[i] = loc
	}

	return out
}

// WithTimeout returns a copy of the chain where every locator waits at most d.
func (c Chain) WithTimeout(d time.Duration) Chain {
	out := make(Chain, len(c))

	for i, loc := range c {
		loc.Timeout = d
		out[i] = loc
	}

	return out
}
