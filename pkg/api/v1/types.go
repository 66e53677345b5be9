package v1

// Config mirrors the .debyrc configuration file. Both sections are
// optional: an omitted section is an inert placeholder that is never
// written.
type Config struct {
	Changelog *Changelog `json:"changelog,omitempty"`
	Control   *Control   `json:"control,omitempty"`
}

type Maintainer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Changelog configures the debian/changelog section.
//
// Distribution and Urgency carry documented defaults, so they are
// pointers: a missing key is defaulted, while an explicit value
// (including an empty string) is validated as-is.
type Changelog struct {
	Update       bool        `json:"update"`
	Package      string      `json:"package"`
	Distribution *string     `json:"distribution,omitempty"`
	Urgency      *string     `json:"urgency,omitempty"`
	Maintainer   *Maintainer `json:"maintainer,omitempty"`
}

// Control configures the debian/control section.
type Control struct {
	Update        bool           `json:"update"`
	SourceControl *SourceControl `json:"sourceControl,omitempty"`
	BinaryControl *BinaryControl `json:"binaryControl,omitempty"`
}

type SourceControl struct {
	Source           string      `json:"source"`
	Section          string      `json:"section"`
	Priority         *string     `json:"priority,omitempty"`
	BuildDepends     []string    `json:"buildDepends,omitempty"`
	StandardsVersion string      `json:"standardsVersion"`
	Homepage         string      `json:"homepage"`
	VcsBrowser       string      `json:"vcsBrowser"`
	Maintainer       *Maintainer `json:"maintainer,omitempty"`
}

type BinaryControl struct {
	Package      string  `json:"package"`
	Description  string  `json:"description"`
	Section      string  `json:"section"`
	Priority     *string `json:"priority,omitempty"`
	PreDepends   string  `json:"preDepends,omitempty"`
	Architecture *string `json:"architecture,omitempty"`
}
