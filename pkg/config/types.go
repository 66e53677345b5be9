package config

// Distribution is a Debian changelog target distribution.
type Distribution string

const (
	DistributionUnstable     Distribution = "unstable"
	DistributionExperimental Distribution = "experimental"
)

// Urgency is a Debian changelog urgency value.
type Urgency string

const (
	UrgencyLow       Urgency = "low"
	UrgencyMedium    Urgency = "medium"
	UrgencyHigh      Urgency = "high"
	UrgencyEmergency Urgency = "emergency"
	UrgencyCritical  Urgency = "critical"
)

// Priority is a Debian control file priority value.
type Priority string

const (
	PriorityRequired  Priority = "required"
	PriorityImportant Priority = "important"
	PriorityStandard  Priority = "standard"
	PriorityOptional  Priority = "optional"
	PriorityExtra     Priority = "extra"
)

// Architecture is a Debian binary package architecture value.
type Architecture string

const (
	ArchitectureAll Architecture = "all"
	ArchitectureAny Architecture = "any"
)

type Maintainer struct {
	Name  string
	Email string
}

// Config is the fully resolved configuration. A nil section means the
// section is disabled and must not be written. Instances are safe for
// concurrent reads once produced by Resolve.
type Config struct {
	Changelog *Changelog
	Control   *Control
}

type Changelog struct {
	Package      string
	Distribution Distribution
	Urgency      Urgency
	Maintainer   Maintainer
}

type Control struct {
	Source SourceControl
	Binary BinaryControl
}

type SourceControl struct {
	Source           string
	Section          string
	Priority         Priority
	BuildDepends     []string
	StandardsVersion string
	Homepage         string
	VcsBrowser       string
	Maintainer       Maintainer
}

type BinaryControl struct {
	Package      string
	Description  string
	Section      string
	Priority     Priority
	PreDepends   string
	Architecture Architecture
}
