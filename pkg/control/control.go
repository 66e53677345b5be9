// Package control composes debian/control files: a source stanza and a
// binary stanza separated by a single blank line. Composition is pure,
// so identical inputs always yield byte-identical output and the target
// file is fully replaced on every update.
package control

import (
	"fmt"
	"strings"

	"github.com/ink8bit/deby/pkg/config"
)

// MalformedExtraFieldError indicates a user-defined field entry that
// cannot be split into a key and a value.
type MalformedExtraFieldError struct {
	Entry string
}

func (e *MalformedExtraFieldError) Error() string {
	return fmt.Sprintf("malformed extra field %q: expected \"Key: Value\"", e.Entry)
}

type extraField struct {
	Key   string
	Value string
}

// Compose returns the full control file text. Extra fields are appended
// to the source stanza in the order supplied.
func Compose(cfg *config.Control, extraFields []string) (string, error) {
	extra, err := parseExtraFields(extraFields)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	writeField := func(field, value string) {
		fmt.Fprintf(&b, "%s: %s\n", field, value)
	}

	// source stanza
	writeField("Source", cfg.Source.Source)
	writeField("Section", cfg.Source.Section)
	writeField("Priority", string(cfg.Source.Priority))
	writeField("Maintainer", fmt.Sprintf("%s <%s>", cfg.Source.Maintainer.Name, cfg.Source.Maintainer.Email))
	if len(cfg.Source.BuildDepends) > 0 {
		writeField("Build-Depends", strings.Join(cfg.Source.BuildDepends, ", "))
	}
	writeField("Standards-Version", cfg.Source.StandardsVersion)
	writeField("Homepage", cfg.Source.Homepage)
	writeField("Vcs-Browser", cfg.Source.VcsBrowser)
	for _, f := range extra {
		writeField(f.Key, f.Value)
	}

	b.WriteString("\n")

	// binary stanza
	writeField("Package", cfg.Binary.Package)
	writeField("Architecture", string(cfg.Binary.Architecture))
	writeField("Section", cfg.Binary.Section)
	writeField("Priority", string(cfg.Binary.Priority))
	if cfg.Binary.PreDepends != "" {
		writeField("Pre-Depends", cfg.Binary.PreDepends)
	}
	writeField("Description", cfg.Binary.Description)

	return b.String(), nil
}

// parseExtraFields splits each "Key: Value" entry at its first colon.
// Blank entries are skipped so callers can pass an empty value to mean
// "no extra fields".
func parseExtraFields(entries []string) ([]extraField, error) {
	out := make([]extraField, 0, len(entries))
	for _, entry := range entries {
		if strings.TrimSpace(entry) == "" {
			continue
		}
		key, value, ok := strings.Cut(entry, ":")
		if !ok {
			return nil, &MalformedExtraFieldError{Entry: entry}
		}
		key = strings.TrimSpace(key)
		if key == "" {
			return nil, &MalformedExtraFieldError{Entry: entry}
		}
		out = append(out, extraField{
			Key:   key,
			Value: strings.TrimSpace(value),
		})
	}
	return out, nil
}
