package ports

// SiteConfig resolves named site configuration variables. Values are assumed
// cheap to read: definition expansion resolves them eagerly so they affect the
// version hash.
//
//go:generate mockgen -source=site_config.go -destination=mocks/mock_site_config.go -package=mocks
type SiteConfig interface {
	// Variable returns the value of a named configuration variable, or
	// domain.ErrUnknownVariable if it is not defined.
	Variable(name string) (string, error)
}
