package notification

import (
	"context"
	"fmt"
	"io"
	"log"
	"slices"
	"strings"
	"time"

	shoutrrr "github.com/nicholas-fedor/shoutrrr"
	router "github.com/nicholas-fedor/shoutrrr/pkg/router"
	stypes "github.com/nicholas-fedor/shoutrrr/pkg/types"

	"github.com/Kaan0029/jabref/internal/conf"
	"github.com/Kaan0029/jabref/internal/errors"
	"github.com/Kaan0029/jabref/internal/logger"
)

// Notifier delivers run summaries through shoutrrr. A Notifier without
// URLs is valid and sends nothing.
type Notifier struct {
	urls           []string
	title          string
	onlyOnFindings bool
	sender         *router.ServiceRouter
	log            logger.Logger
}

// New builds a Notifier from settings, validating every service URL.
func New(settings conf.NotifySettings) (*Notifier, error) {
	n := &Notifier{
		urls:           slices.Clone(settings.URLs),
		title:          strings.TrimSpace(settings.Title),
		onlyOnFindings: settings.OnlyOnFindings,
		log:            GetLogger(),
	}
	if len(n.urls) == 0 {
		return n, nil
	}

	sender, err := shoutrrr.CreateSender(n.urls...)
	if err != nil {
		return nil, errors.New(n.sanitize(err)).
			Component("notification").
			Category(errors.CategoryConfiguration).
			Context("services", len(n.urls)).
			Build()
	}
	if settings.Timeout > 0 {
		sender.Timeout = settings.Timeout
	}
	sender.SetLogger(log.New(io.Discard, "", 0))
	n.sender = sender

	return n, nil
}

// Enabled reports whether any service is configured
func (n *Notifier) Enabled() bool {
	return n.sender != nil
}

// Notify sends the summary to every service. With onlyonfindings set a
// clean run is not reported. The first delivery error is returned.
func (n *Notifier) Notify(ctx context.Context, s Summary) error {
	if !n.Enabled() {
		return nil
	}
	if n.onlyOnFindings && !s.HasFindings() {
		n.log.Debug("notification skipped, no findings")
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	start := time.Now()
	params := stypes.Params{}
	if n.title != "" {
		params.SetTitle(n.title)
	}

	// The router applies its own timeout per service
	errs := n.sender.Send(s.Message(), &params)

	var failed []error
	for _, e := range errs {
		if e != nil {
			failed = append(failed, e)
		}
	}
	if len(failed) > 0 {
		return errors.New(n.sanitize(failed[0])).
			Component("notification").
			Category(errors.CategoryNotification).
			Context("services", len(n.urls)).
			Context("failed", len(failed)).
			Timing("notify", time.Since(start)).
			Build()
	}

	n.log.Info("notification sent",
		logger.Int("services", len(n.urls)),
		logger.Duration("elapsed", time.Since(start)))
	return nil
}

// sanitize strips service URLs, which usually carry tokens, from err
func (n *Notifier) sanitize(err error) error {
	msg := err.Error()
	for _, u := range n.urls {
		if u == "" {
			continue
		}
		scheme, _, _ := strings.Cut(u, "://")
		msg = strings.ReplaceAll(msg, u, scheme+"://[REDACTED]")
	}
	return fmt.Errorf("%s", logger.RedactSensitiveData(msg))
}
