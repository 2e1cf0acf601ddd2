package ports

// ConfigLocator finds the nearest pesel.yaml starting from an arbitrary directory.
type ConfigLocator interface {
	FindConfig(startDir string) (string, error)
}
