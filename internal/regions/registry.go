package regions

import (
	"net/url"
	"sort"

	"go.uber.org/zap"

	"fragment-cache/internal/models"
)

// Registry holds the validated cached-region configurations. It is built
// once at startup; lookups at render time cannot fail with a configuration
// error.
type Registry struct {
	regions map[string]*Region
	logger  *zap.Logger
}

// NewRegistry compiles and validates every region declaration. Any invalid
// declaration fails the whole registry: configuration errors are fatal at
// setup, never surfaced at render time.
func NewRegistry(config *RegionsConfig, logger *zap.Logger) (*Registry, error) {
	if config == nil || len(config.Regions) == 0 {
		return nil, models.NewConfigurationError("", "missing regions section")
	}

	compiled := make(map[string]*Region, len(config.Regions))
	for name, decl := range config.Regions {
		region, err := compileRegion(name, decl)
		if err != nil {
			return nil, err
		}
		compiled[name] = region
	}

	logger.Info("Region configuration loaded", zap.Int("regions", len(compiled)))
	return &Registry{regions: compiled, logger: logger}, nil
}

// Lookup returns the region configuration by name.
func (r *Registry) Lookup(name string) (*Region, bool) {
	region, ok := r.regions[name]
	return region, ok
}

// Names returns all configured region names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.regions))
	for name := range r.regions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func compileRegion(name string, decl RegionDecl) (*Region, error) {
	if name == "" {
		return nil, models.NewConfigurationError("", "region name cannot be empty")
	}

	if decl.Origin == "" {
		return nil, models.NewConfigurationError(name, "missing origin")
	}
	origin, err := url.Parse(decl.Origin)
	if err != nil || origin.Scheme == "" || origin.Host == "" {
		return nil, models.NewConfigurationError(name, "origin %q is not an absolute URL", decl.Origin)
	}

	spec := models.ExpirationSpec{
		FreshFor:   decl.ExpiresAfter.Std(),
		SlidingFor: decl.ExpiresSliding.Std(),
		At:         decl.ExpiresOn,
	}
	if err := spec.Validate(); err != nil {
		if cfgErr, ok := err.(*models.ConfigurationError); ok {
			return nil, cfgErr.WithRegion(name)
		}
		return nil, err
	}

	for _, set := range [][]string{decl.VaryByQuery, decl.VaryByCookie, decl.VaryByHeader} {
		for _, key := range set {
			if key == "" {
				return nil, models.NewConfigurationError(name, "vary-by key names cannot be empty")
			}
		}
	}

	return &Region{
		Name:   name,
		Origin: decl.Origin,
		VaryBy: models.VaryBy{
			User:       decl.VaryByUser,
			QueryKeys:  decl.VaryByQuery,
			CookieKeys: decl.VaryByCookie,
			HeaderKeys: decl.VaryByHeader,
			Culture:    decl.VaryByCulture,
		},
		Expiration: spec,
	}, nil
}
