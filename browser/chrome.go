package browser

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/chromedp"
)

const defaultWait = 10 * time.Second

// Chrome launches a new headless Chrome process per Launch call, so every
// page gets its own cookies and storage.
type Chrome struct {
	Headless  bool
	UserAgent string
	ExecPath  string
	// Timezone is an IANA name the page's clock is pinned to, so calendars
	// render the same dates as the server computes.
	Timezone string
}

func (c *Chrome) Launch(ctx context.Context) (Page, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", c.Headless),
		chromedp.WindowSize(1280, 900),
	)

	if c.UserAgent != "" {
		opts = append(opts, chromedp.UserAgent(c.UserAgent))
	}

	if c.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(c.ExecPath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.WithoutCancel(ctx), opts...)
	tabCtx, cancelTab := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(format string, args ...any) {
		slog.Default().Debug(fmt.Sprintf(format, args...), "component", "chrome")
	}))

	var actions []chromedp.Action
	if c.Timezone != "" {
		actions = append(actions, emulation.SetTimezoneOverride(c.Timezone))
	}

	// the first Run starts the browser process
	if err := chromedp.Run(tabCtx, actions...); err != nil {
		cancelTab()
		cancelAlloc()
		return nil, fmt.Errorf("failed to start browser: %w", err)
	}

	return &chromePage{
		ctx: tabCtx,
		cancel: func() {
			cancelTab()
			cancelAlloc()
		},
	}, nil
}

type chromePage struct {
	ctx    context.Context
	cancel context.CancelFunc
}

// run executes actions on the tab, bounded by timeout and by the caller's ctx.
func (p *chromePage) run(ctx context.Context, timeout time.Duration, actions ...chromedp.Action) error {
	if timeout <= 0 {
		timeout = defaultWait
	}

	runCtx, cancel := context.WithTimeout(p.ctx, timeout)
	defer cancel()

	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	return chromedp.Run(runCtx, actions...)
}

func (p *chromePage) Navigate(ctx context.Context, url string) error {
	if err := p.run(ctx, 30*time.Second, chromedp.Navigate(url)); err != nil {
		return fmt.Errorf("failed to navigate to %v: %w", url, err)
	}
	return nil
}

func (p *chromePage) WaitVisible(ctx context.Context, loc Locator) error {
	if err := p.run(ctx, loc.Timeout, chromedp.WaitVisible(loc.Query, chromedp.BySearch)); err != nil {
		return fmt.Errorf("%w: %v: %v", ErrNotFound, loc, err)
	}
	return nil
}

func (p *chromePage) Click(ctx context.Context, loc Locator) error {
	err := p.run(ctx, loc.Timeout,
		chromedp.WaitVisible(loc.Query, chromedp.BySearch),
		chromedp.ScrollIntoView(loc.Query, chromedp.BySearch),
		chromedp.Click(loc.Query, chromedp.BySearch, chromedp.NodeVisible),
	)
	if err != nil {
		return fmt.Errorf("failed to click %v: %w", loc, err)
	}
	return nil
}

func (p *chromePage) Type(ctx context.Context, loc Locator, text string) error {
	err := p.run(ctx, loc.Timeout,
		chromedp.WaitVisible(loc.Query, chromedp.BySearch),
		chromedp.Clear(loc.Query, chromedp.BySearch),
		chromedp.SendKeys(loc.Query, text, chromedp.BySearch),
	)
	if err != nil {
		return fmt.Errorf("failed to type into %v: %w", loc, err)
	}
	return nil
}

func (p *chromePage) Text(ctx context.Context, loc Locator) (string, error) {
	var text string

	if err := p.run(ctx, loc.Timeout, chromedp.Text(loc.Query, &text, chromedp.BySearch, chromedp.NodeVisible)); err != nil {
		return "", fmt.Errorf("failed to read text of %v: %w", loc, err)
	}

	return strings.TrimSpace(text), nil
}

const textsScript = `(function(q) {
	var out = [];
	if (q.startsWith("/") || q.startsWith("(")) {
		var r = document.evaluate(q, document, null, XPathResult.ORDERED_NODE_SNAPSHOT_TYPE, null);
		for (var i = 0; i < r.snapshotLength; i++) {
			out.push(r.snapshotItem(i).textContent.trim());
		}
	} else {
		document.querySelectorAll(q).forEach(function(n) { out.push(n.textContent.trim()); });
	}
	return out;
})(%s)`

func (p *chromePage) Texts(ctx context.Context, loc Locator) ([]string, error) {
	query, err := json.Marshal(loc.Query)
	if err != nil {
		return nil, fmt.Errorf("failed to encode query: %w", err)
	}

	var texts []string

	err = p.run(ctx, loc.Timeout,
		chromedp.WaitVisible(loc.Query, chromedp.BySearch),
		chromedp.Evaluate(fmt.Sprintf(textsScript, query), &texts),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to read texts of %v: %w", loc, err)
	}

	return texts, nil
}

func (p *chromePage) Close() error {
	p.cancel()
	return nil
}
