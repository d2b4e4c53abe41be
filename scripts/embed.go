package scripts

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed *.tengo
var FS embed.FS

// HazardSteer returns the hazard steering script source.
func HazardSteer() ([]byte, error) {
	data, err := fs.ReadFile(FS, "hazard_steer.tengo")
	if err != nil {
		return nil, fmt.Errorf("scripts: read hazard_steer.tengo: %w", err)
	}
	return data, nil
}
