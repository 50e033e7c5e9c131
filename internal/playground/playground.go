// Package playground opens a query in the interactive GraphQL playground
// instead of executing it.
package playground

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"os/exec"
	"runtime"

	"github.com/finops-claw-gang/flowmeta/internal/graphql"
)

// Opener hands a request to the playground.
type Opener interface {
	Open(ctx context.Context, req graphql.Request) error
}

// Launcher opens a URL in the user's browser.
type Launcher interface {
	Launch(ctx context.Context, target string) error
}

// BrowserOpener opens BaseURL?query=<query text> through a Launcher.
type BrowserOpener struct {
	baseURL  string
	launcher Launcher
}

// NewBrowserOpener creates an opener for the playground at baseURL. A nil
// launcher uses the operating system's default browser.
func NewBrowserOpener(baseURL string, launcher Launcher) *BrowserOpener {
	if launcher == nil {
		launcher = OSLauncher{}
	}
	return &BrowserOpener{baseURL: baseURL, launcher: launcher}
}

// URL returns the playground address preloaded with req.
func (o *BrowserOpener) URL(req graphql.Request) (string, error) {
	u, err := url.Parse(o.baseURL)
	if err != nil {
		return "", fmt.Errorf("playground: invalid url %q: %w", o.baseURL, err)
	}
	q := u.Query()
	q.Set("query", req.String())
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Open launches the playground with req loaded.
func (o *BrowserOpener) Open(ctx context.Context, req graphql.Request) error {
	target, err := o.URL(req)
	if err != nil {
		return err
	}
	slog.Debug("opening playground", "entity", req.Entity(), "url", target)
	if err := o.launcher.Launch(ctx, target); err != nil {
		return fmt.Errorf("playground: %w", err)
	}
	return nil
}

// OSLauncher opens targets with `open` on darwin and `xdg-open` on linux.
type OSLauncher struct{}

func (OSLauncher) Launch(ctx context.Context, target string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.CommandContext(ctx, "open", target)
	case "linux":
		cmd = exec.CommandContext(ctx, "xdg-open", target)
	default:
		return fmt.Errorf("opening a browser is not supported on %s", runtime.GOOS)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open browser: %w", err)
	}
	return nil
}
