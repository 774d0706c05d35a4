package regions

import (
	"time"

	"fragment-cache/internal/models"
)

// RegionDecl is the YAML shape of one cached-region declaration. At most one
// of the three expiration options may be set; omitting all three yields the
// default absolute duration.
type RegionDecl struct {
	// Origin is the upstream URL the rendering pipeline fetches this
	// fragment from.
	Origin string `yaml:"origin"`

	ExpiresAfter   models.Duration `yaml:"expires_after"`
	ExpiresSliding models.Duration `yaml:"expires_sliding"`
	ExpiresOn      time.Time       `yaml:"expires_on"`

	VaryByUser    bool     `yaml:"vary_by_user"`
	VaryByQuery   []string `yaml:"vary_by_query"`
	VaryByCookie  []string `yaml:"vary_by_cookie"`
	VaryByHeader  []string `yaml:"vary_by_header"`
	VaryByCulture bool     `yaml:"vary_by_culture"`
}

// RegionsConfig is the top-level region configuration file.
type RegionsConfig struct {
	Regions map[string]RegionDecl `yaml:"regions"`
}

// Region is one validated, compiled cached-region configuration.
type Region struct {
	Name       string
	Origin     string
	VaryBy     models.VaryBy
	Expiration models.ExpirationSpec
}
