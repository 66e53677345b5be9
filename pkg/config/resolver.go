package config

import (
	"strings"

	v1 "github.com/ink8bit/deby/pkg/api/v1"
)

var (
	allowedDistributions = []string{"unstable", "experimental"}
	allowedUrgencies     = []string{"low", "medium", "high", "emergency", "critical"}
	allowedPriorities    = []string{"required", "important", "standard", "optional", "extra"}
	allowedArchitectures = []string{"all", "any"}
)

// Resolve converts a raw .debyrc configuration into a validated Config.
// It is the only conversion path between the two: composers never see a
// raw configuration, so an unvalidated enum value can never reach them.
//
// Defaults are applied to absent fields only. An explicitly supplied
// value, including an empty string, is validated as user intent.
// Disabled sections (update=false or omitted) resolve to a nil section:
// their enum values are still checked, but required-field checks are
// skipped because nothing will ever query them.
func Resolve(raw v1.Config) (*Config, error) {
	changelog, err := resolveChangelog(raw.Changelog)
	if err != nil {
		return nil, err
	}
	control, err := resolveControl(raw.Control)
	if err != nil {
		return nil, err
	}
	return &Config{
		Changelog: changelog,
		Control:   control,
	}, nil
}

func resolveChangelog(raw *v1.Changelog) (*Changelog, error) {
	if raw == nil {
		return nil, nil
	}
	distribution, err := enumValue("changelog.distribution", raw.Distribution, "unstable", allowedDistributions)
	if err != nil {
		return nil, err
	}
	urgency, err := enumValue("changelog.urgency", raw.Urgency, "low", allowedUrgencies)
	if err != nil {
		return nil, err
	}
	if !raw.Update {
		return nil, nil
	}

	if raw.Package == "" {
		return nil, &MissingRequiredFieldError{Field: "changelog.package"}
	}
	maintainer, err := requireMaintainer("changelog.maintainer", raw.Maintainer)
	if err != nil {
		return nil, err
	}
	return &Changelog{
		Package:      raw.Package,
		Distribution: Distribution(distribution),
		Urgency:      Urgency(urgency),
		Maintainer:   maintainer,
	}, nil
}

func resolveControl(raw *v1.Control) (*Control, error) {
	if raw == nil {
		return nil, nil
	}
	source, err := resolveSourceControl(raw.SourceControl)
	if err != nil {
		return nil, err
	}
	binary, err := resolveBinaryControl(raw.BinaryControl)
	if err != nil {
		return nil, err
	}
	if !raw.Update {
		return nil, nil
	}

	if raw.SourceControl == nil {
		return nil, &MissingRequiredFieldError{Field: "control.sourceControl"}
	}
	if raw.BinaryControl == nil {
		return nil, &MissingRequiredFieldError{Field: "control.binaryControl"}
	}
	maintainer, err := requireMaintainer("control.sourceControl.maintainer", raw.SourceControl.Maintainer)
	if err != nil {
		return nil, err
	}
	source.Maintainer = maintainer
	if raw.BinaryControl.Package == "" {
		return nil, &MissingRequiredFieldError{Field: "control.binaryControl.package"}
	}
	return &Control{
		Source: source,
		Binary: binary,
	}, nil
}

func resolveSourceControl(raw *v1.SourceControl) (SourceControl, error) {
	if raw == nil {
		return SourceControl{Priority: PriorityOptional}, nil
	}
	priority, err := enumValue("control.sourceControl.priority", raw.Priority, "optional", allowedPriorities)
	if err != nil {
		return SourceControl{}, err
	}
	return SourceControl{
		Source:           raw.Source,
		Section:          raw.Section,
		Priority:         Priority(priority),
		BuildDepends:     normalizeDepends(raw.BuildDepends),
		StandardsVersion: raw.StandardsVersion,
		Homepage:         raw.Homepage,
		VcsBrowser:       raw.VcsBrowser,
	}, nil
}

func resolveBinaryControl(raw *v1.BinaryControl) (BinaryControl, error) {
	if raw == nil {
		return BinaryControl{Priority: PriorityOptional, Architecture: ArchitectureAny}, nil
	}
	priority, err := enumValue("control.binaryControl.priority", raw.Priority, "optional", allowedPriorities)
	if err != nil {
		return BinaryControl{}, err
	}
	architecture, err := enumValue("control.binaryControl.architecture", raw.Architecture, "any", allowedArchitectures)
	if err != nil {
		return BinaryControl{}, err
	}
	return BinaryControl{
		Package:      raw.Package,
		Description:  raw.Description,
		Section:      raw.Section,
		Priority:     Priority(priority),
		PreDepends:   raw.PreDepends,
		Architecture: Architecture(architecture),
	}, nil
}

func requireMaintainer(field string, raw *v1.Maintainer) (Maintainer, error) {
	if raw == nil || raw.Name == "" {
		return Maintainer{}, &MissingRequiredFieldError{Field: field + ".name"}
	}
	if raw.Email == "" {
		return Maintainer{}, &MissingRequiredFieldError{Field: field + ".email"}
	}
	return Maintainer{Name: raw.Name, Email: raw.Email}, nil
}

// enumValue defaults an absent field and case-sensitively validates a
// supplied one against its allowed literal set.
func enumValue(field string, raw *string, def string, allowed []string) (string, error) {
	if raw == nil {
		return def, nil
	}
	for _, a := range allowed {
		if *raw == a {
			return *raw, nil
		}
	}
	return "", &InvalidEnumValueError{Field: field, Got: *raw, Allowed: allowed}
}

// normalizeDepends drops empty entries so an absent or all-blank list
// renders as no Build-Depends line rather than an empty one.
func normalizeDepends(depends []string) []string {
	out := make([]string, 0, len(depends))
	for _, d := range depends {
		d = strings.TrimSpace(d)
		if d == "" {
			continue
		}
		out = append(out, d)
	}
	return out
}
