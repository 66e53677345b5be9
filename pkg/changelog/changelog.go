// Package changelog composes debian/changelog entries. History is
// append-only from the top: a new entry block is prepended above any
// existing content, which is concatenated verbatim and never parsed.
package changelog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-logr/logr"
	version "github.com/knqyf263/go-deb-version"

	"github.com/ink8bit/deby/pkg/config"
	"github.com/ink8bit/deby/pkg/fileutil"
)

var (
	ErrEmptyVersion = errors.New("version must not be empty")
	ErrEmptyChanges = errors.New("changes must not be empty")
)

// rfc2822 is the timestamp layout expected by dpkg-parsechangelog:
// RFC 2822 with a numeric UTC offset.
const rfc2822 = "Mon, 02 Jan 2006 15:04:05 -0700"

// Composer builds changelog file content. The clock is injectable as
// the entry timestamp is the one source of non-determinism.
type Composer struct {
	Now func() time.Time
}

func NewComposer() *Composer {
	return &Composer{Now: time.Now}
}

// Compose returns the full changelog file text: one new entry block for
// the given version and changes, followed by the existing content when
// there is any.
func (c *Composer) Compose(ctx context.Context, cfg *config.Changelog, ver, changes string, existing fileutil.Contents) (string, error) {
	log := logr.FromContextOrDiscard(ctx)

	ver = strings.TrimSpace(ver)
	if ver == "" {
		return "", ErrEmptyVersion
	}
	changes = strings.TrimSpace(changes)
	if changes == "" {
		return "", ErrEmptyChanges
	}

	// advisory only: the changelog grammar does not gate on this, but
	// dpkg tooling downstream will
	if _, err := version.NewVersion(ver); err != nil {
		log.V(1).Info("version does not parse as a Debian version", "version", ver)
	}

	entry := c.formatEntry(cfg, ver, changes)
	if !existing.Found {
		log.V(2).Info("no existing changelog, creating a fresh one", "package", cfg.Package)
		return entry, nil
	}
	log.V(2).Info("prepending entry to existing changelog", "package", cfg.Package)
	return entry + "\n" + existing.Data, nil
}

// formatEntry renders one canonical changelog entry block:
//
//	<package> (<version>) <distribution>; urgency=<urgency>
//
//	  * <changes line>
//
//	 -- <name> <<email>>  <RFC-2822 timestamp>
func (c *Composer) formatEntry(cfg *config.Changelog, ver, changes string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s) %s; urgency=%s\n\n", cfg.Package, ver, cfg.Distribution, cfg.Urgency)
	for _, line := range strings.Split(changes, "\n") {
		fmt.Fprintf(&b, "  * %s\n", line)
	}
	fmt.Fprintf(&b, "\n -- %s <%s>  %s\n", cfg.Maintainer.Name, cfg.Maintainer.Email, c.Now().Format(rfc2822))
	return b.String()
}
