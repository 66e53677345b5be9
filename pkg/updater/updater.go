// Package updater decides which of the two target files to write and
// delegates the actual I/O to a FileSystem collaborator. Each file is
// composed fully in memory before any write, so a validation failure
// never leaves a target partially written.
package updater

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-logr/logr"

	"github.com/ink8bit/deby/pkg/changelog"
	"github.com/ink8bit/deby/pkg/config"
	"github.com/ink8bit/deby/pkg/control"
	"github.com/ink8bit/deby/pkg/fileutil"
)

const (
	ChangelogPath = "debian/changelog"
	ControlPath   = "debian/control"
)

const (
	msgChangelogSkipped = "debian/changelog file not updated due to config file setting"
	msgControlSkipped   = "debian/control file not updated due to config file setting"
	msgChangelogUpdated = "Successfully created a new entry in debian/changelog file"
	msgControlUpdated   = "Successfully created a new entry in debian/control file"
)

// FileSystem is the read/write collaborator. Reads must report a
// missing file as not-found rather than as an error; writes must be
// atomic.
type FileSystem interface {
	ReadIfExists(path string) (fileutil.Contents, error)
	WriteAtomic(path string, data string) error
}

// Updater orchestrates changelog and control updates for one resolved
// configuration.
type Updater struct {
	cfg      *config.Config
	fs       FileSystem
	composer *changelog.Composer
}

func New(cfg *config.Config, fs FileSystem) *Updater {
	return &Updater{
		cfg:      cfg,
		fs:       fs,
		composer: changelog.NewComposer(),
	}
}

// Result reports the outcome for each target file independently, so a
// caller always learns which artifact failed and why.
type Result struct {
	ChangelogMessage string
	ControlMessage   string
	ChangelogErr     error
	ControlErr       error
}

// Err returns nil only if every attempted file succeeded.
func (r *Result) Err() error {
	return errors.Join(r.ChangelogErr, r.ControlErr)
}

// Update attempts both files. A failure on one never short-circuits the
// other.
func (u *Updater) Update(ctx context.Context, version, changes string, extraFields []string) (*Result, error) {
	res := &Result{}
	res.ChangelogMessage, res.ChangelogErr = u.UpdateChangelog(ctx, version, changes)
	res.ControlMessage, res.ControlErr = u.UpdateControl(ctx, extraFields)
	return res, res.Err()
}

// UpdateChangelog composes a new changelog entry and writes the
// prepended file. A disabled changelog section skips entirely: no read,
// no write, no error.
func (u *Updater) UpdateChangelog(ctx context.Context, version, changes string) (string, error) {
	log := logr.FromContextOrDiscard(ctx)
	if u.cfg.Changelog == nil {
		log.V(1).Info("changelog section disabled, skipping")
		return msgChangelogSkipped, nil
	}
	existing, err := u.fs.ReadIfExists(ChangelogPath)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", ChangelogPath, err)
	}
	text, err := u.composer.Compose(ctx, u.cfg.Changelog, version, changes, existing)
	if err != nil {
		return "", err
	}
	if err := u.fs.WriteAtomic(ChangelogPath, text); err != nil {
		return "", fmt.Errorf("writing %s: %w", ChangelogPath, err)
	}
	log.V(1).Info("updated changelog", "path", ChangelogPath)
	return msgChangelogUpdated, nil
}

// UpdateControl composes the control file and fully replaces the
// target. A disabled control section skips entirely.
func (u *Updater) UpdateControl(ctx context.Context, extraFields []string) (string, error) {
	log := logr.FromContextOrDiscard(ctx)
	if u.cfg.Control == nil {
		log.V(1).Info("control section disabled, skipping")
		return msgControlSkipped, nil
	}
	text, err := control.Compose(u.cfg.Control, extraFields)
	if err != nil {
		return "", err
	}
	if err := u.fs.WriteAtomic(ControlPath, text); err != nil {
		return "", fmt.Errorf("writing %s: %w", ControlPath, err)
	}
	log.V(1).Info("updated control", "path", ControlPath)
	return msgControlUpdated, nil
}
