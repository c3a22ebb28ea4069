package pdf

import (
	"context"
	"fmt"
	"os"
	"packslip/internal/domain/entities"
	"packslip/internal/usecase/interfaces"
	"packslip/pkg/logger"
	"sync"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

const defaultRenderTimeout = 30 * time.Second

// Paper sizes in inches.
var paperSizes = map[entities.PageSize][2]float64{
	entities.PageSizeA4:     {8.27, 11.69},
	entities.PageSizeLetter: {8.5, 11},
}

// ChromeOptions configures the headless browser.
type ChromeOptions struct {
	ExecPath string
	Timeout  time.Duration
}

// ChromeRenderer prints packing slips with one long-lived headless Chrome.
// Every Render opens its own tab, so concurrent requests do not share page state.
type ChromeRenderer struct {
	allocCancel   context.CancelFunc
	browserCtx    context.Context
	browserCancel context.CancelFunc
	timeout       time.Duration
	closeOnce     sync.Once
}

var _ interfaces.IDocumentRenderer = (*ChromeRenderer)(nil)

// detectChromePath checks the configured path first, then common installation paths.
func detectChromePath(configured string) string {
	if configured != "" {
		if _, err := os.Stat(configured); err == nil {
			return configured
		}
	}

	paths := []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/snap/bin/chromium",
	}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// NewChromeRenderer starts the browser. Call Close to stop it.
func NewChromeRenderer(opts ChromeOptions) (*ChromeRenderer, error) {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultRenderTimeout
	}

	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox, // required in containers
		chromedp.DisableGPU,
	)
	if path := detectChromePath(opts.ExecPath); path != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(path))
	} else {
		logger.L().Warn("[pdf][infrastructure] chrome not found in known paths, relying on chromedp lookup")
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), allocOpts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)

	// An empty Run launches the browser process.
	if err := chromedp.Run(browserCtx); err != nil {
		browserCancel()
		allocCancel()
		return nil, fmt.Errorf("failed to start chrome: %w", err)
	}

	return &ChromeRenderer{
		allocCancel:   allocCancel,
		browserCtx:    browserCtx,
		browserCancel: browserCancel,
		timeout:       timeout,
	}, nil
}

func (r *ChromeRenderer) Render(ctx context.Context, doc entities.PackingDocument) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	html, err := BuildHTML(doc)
	if err != nil {
		return nil, err
	}

	size, ok := paperSizes[doc.PageSize]
	if !ok {
		size = paperSizes[entities.PageSizeA4]
	}

	tabCtx, cancelTab := chromedp.NewContext(r.browserCtx)
	defer cancelTab()
	tabCtx, cancelTimeout := context.WithTimeout(tabCtx, r.timeout)
	defer cancelTimeout()

	// The tab lives under the browser context, so tie it to the caller as well.
	stop := context.AfterFunc(ctx, cancelTab)
	defer stop()

	started := time.Now()
	var pdfBuf []byte
	err = chromedp.Run(tabCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, html).Do(ctx)
		}),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(size[0]).
				WithPaperHeight(size[1]).
				WithMarginTop(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	logger.FromContext(ctx).Debug("[pdf][infrastructure] rendered packing slip",
		zap.String("order_number", doc.Shipment.OrderNumber),
		zap.String("page_size", string(doc.PageSize)),
		zap.Int("bytes", len(pdfBuf)),
		zap.Duration("elapsed", time.Since(started)),
	)
	return pdfBuf, nil
}

// Close stops the browser process.
func (r *ChromeRenderer) Close() {
	r.closeOnce.Do(func() {
		r.browserCancel()
		r.allocCancel()
	})
}
