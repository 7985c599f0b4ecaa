package curriculum

import (
	"bytes"
	_ "embed"
	"fmt"
)

//go:embed content/catalog.yaml
var seedContent []byte

// DefaultCatalog builds the catalog from the content bundled with the binary.
// The bundled content is validated by tests, so a failure here is a build defect.
func DefaultCatalog() *Catalog {
	c, err := LoadCatalog(bytes.NewReader(seedContent))
	if err != nil {
		panic(fmt.Sprintf("curriculum: bundled content is invalid: %v", err))
	}
	return c
}
