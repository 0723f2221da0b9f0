// Package browsertest provides an in-memory browser.Page for testing flows
// without a real browser.
package browsertest

import (
	"context"
	"fmt"
	"sync"

	"github.com/hanksha/tennis-booking-backend/browser"
)

// Page answers queries from static tables. An element is visible when its
// query is in Visible; Text pops successive values from TextQueue (the last
// one sticks).
type Page struct {
	mu sync.Mutex

	Visible   map[string]bool
	TextQueue map[string][]string
	AllTexts  map[string][]string
	OnClick   map[string]func(p *Page)

	NavigateErr error

	Navigated []string
	Clicks    []string
	Typed     map[string]string
	Closed    bool
}

func NewPage() *Page {
	return &Page{
		Visible:   map[string]bool{},
		TextQueue: map[string][]string{},
		AllTexts:  map[string][]string{},
		OnClick:   map[string]func(p *Page){},
		Typed:     map[string]string{},
	}
}

// Show marks the first locator of each chain as visible.
func (p *Page) Show(chains ...browser.Chain) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, c := range chains {
		if len(c) > 0 {
			p.Visible[c[0].Query] = true
		}
	}
}

// Hide removes every locator of each chain from the visible set.
func (p *Page) Hide(chains ...browser.Chain) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, c := range chains {
		for _, loc := range c {
			delete(p.Visible, loc.Query)
		}
	}
}

func (p *Page) Clicked(query string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, q := range p.Clicks {
		if q == query {
			return true
		}
	}

	return false
}

func (p *Page) Navigate(ctx context.Context, url string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.NavigateErr != nil {
		return p.NavigateErr
	}

	p.Navigated = append(p.Navigated, url)
	return nil
}

func (p *Page) WaitVisible(ctx context.Context, loc browser.Locator) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.visible(loc)
}

func (p *Page) visible(loc browser.Locator) error {
	if !p.Visible[loc.Query] {
		return fmt.Errorf("%w: %v", browser.ErrNotFound, loc)
	}
	return nil
}

func (p *Page) Click(ctx context.Context, loc browser.Locator) error {
	p.mu.Lock()

	if err := p.visible(loc); err != nil {
		p.mu.Unlock()
		return err
	}

	p.Clicks = append(p.Clicks, loc.Query)
	hook := p.OnClick[loc.Query]
	p.mu.Unlock()

	if hook != nil {
		hook(p)
	}

	return nil
}

func (p *Page) Type(ctx context.Context, loc browser.Locator, text string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.visible(loc); err != nil {
		return err
	}

	p.Typed[loc.Query] = text
	return nil
}

func (p *Page) Text(ctx context.Context, loc browser.Locator) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.visible(loc); err != nil {
		return "", err
	}

	queue := p.TextQueue[loc.Query]
	if len(queue) == 0 {
		return "", nil
	}

	text := queue[0]
	if len(queue) > 1 {
		p.TextQueue[loc.Query] = queue[1:]
	}

	return text, nil
}

func (p *Page) Texts(ctx context.Context, loc browser.Locator) ([]string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.visible(loc); err != nil {
		return nil, err
	}

	return append([]string(nil), p.AllTexts[loc.Query]...), nil
}

func (p *Page) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.Closed = true
	return nil
}

// Launcher hands out the same Page on every launch.
type Launcher struct {
	Page *Page
	Err  error

	mu       sync.Mutex
	launches int
}

func (l *Launcher) Launch(ctx context.Context) (browser.Page, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.launches++

	if l.Err != nil {
		return nil, l.Err
	}

	return l.Page, nil
}

func (l *Launcher) Launches() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.launches
}
