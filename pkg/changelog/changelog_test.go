package changelog

import (
	"context"
	"testing"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/testr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ink8bit/deby/pkg/config"
	"github.com/ink8bit/deby/pkg/fileutil"
)

func testComposer() *Composer {
	return &Composer{
		Now: func() time.Time {
			return time.Date(2024, time.March, 1, 12, 30, 0, 0, time.UTC)
		},
	}
}

func testConfig() *config.Changelog {
	return &config.Changelog{
		Package:      "deby",
		Distribution: config.DistributionUnstable,
		Urgency:      config.UrgencyLow,
		Maintainer:   config.Maintainer{Name: "Ink", Email: "ink@example.com"},
	}
}

func testContext(t *testing.T) context.Context {
	return logr.NewContext(context.TODO(), testr.NewWithOptions(t, testr.Options{Verbosity: 10}))
}

const wantEntry = `deby (1.0.0) unstable; urgency=low

  * fix bug

 -- Ink <ink@example.com>  Fri, 01 Mar 2024 12:30:00 +0000
`

func TestCompose_FirstRun(t *testing.T) {
	out, err := testComposer().Compose(testContext(t), testConfig(), "1.0.0", "fix bug", fileutil.Contents{})
	require.NoError(t, err)
	assert.Equal(t, wantEntry, out)
}

func TestCompose_PrependsToExisting(t *testing.T) {
	existing := fileutil.Contents{Data: "OLD_CONTENT", Found: true}
	out, err := testComposer().Compose(testContext(t), testConfig(), "1.0.0", "fix bug", existing)
	require.NoError(t, err)
	assert.Equal(t, wantEntry+"\nOLD_CONTENT", out)
}

func TestCompose_EmptyExistingFileIsStillHistory(t *testing.T) {
	// an existing-but-empty file must not be mistaken for a first run
	existing := fileutil.Contents{Data: "", Found: true}
	out, err := testComposer().Compose(testContext(t), testConfig(), "1.0.0", "fix bug", existing)
	require.NoError(t, err)
	assert.Equal(t, wantEntry+"\n", out)
}

func TestCompose_MultiLineChanges(t *testing.T) {
	out, err := testComposer().Compose(testContext(t), testConfig(), "2.1.0", "fix bug\nadd feature\nupdate docs", fileutil.Contents{})
	require.NoError(t, err)
	assert.Contains(t, out, "  * fix bug\n  * add feature\n  * update docs\n")
}

func TestCompose_EmptyInputs(t *testing.T) {
	var cases = []struct {
		name    string
		version string
		changes string
		err     error
	}{
		{"empty version", "", "fix bug", ErrEmptyVersion},
		{"whitespace version", "   ", "fix bug", ErrEmptyVersion},
		{"empty changes", "1.0.0", "", ErrEmptyChanges},
		{"whitespace changes", "1.0.0", " \n\t", ErrEmptyChanges},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := testComposer().Compose(testContext(t), testConfig(), tt.version, tt.changes, fileutil.Contents{})
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestCompose_NonDebianVersionIsAccepted(t *testing.T) {
	// only emptiness is fatal; an odd version string is logged, not rejected
	out, err := testComposer().Compose(testContext(t), testConfig(), "not a deb version", "fix bug", fileutil.Contents{})
	require.NoError(t, err)
	assert.Contains(t, out, "deby (not a deb version) unstable; urgency=low")
}

func TestCompose_TimestampUsesInjectedClock(t *testing.T) {
	c := &Composer{
		Now: func() time.Time {
			loc := time.FixedZone("AEST", 10*60*60)
			return time.Date(2023, time.December, 25, 9, 0, 0, 0, loc)
		},
	}
	out, err := c.Compose(testContext(t), testConfig(), "1.0.0", "fix bug", fileutil.Contents{})
	require.NoError(t, err)
	assert.Contains(t, out, " -- Ink <ink@example.com>  Mon, 25 Dec 2023 09:00:00 +1000\n")
}
