package levels

import "embed"

//go:embed *.yaml
var LevelsFS embed.FS

// DefaultCatalog loads the level set compiled into the binary.
func DefaultCatalog() (*Catalog, error) {
	return LoadCatalog(LevelsFS)
}
