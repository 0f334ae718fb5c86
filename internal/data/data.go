// SPDX-License-Identifier: MPL-2.0

// Package data loads the merged data catalog: every data file the theme
// ships plus every user data file, resolved through the cascade, decoded by
// extension into one keyed map for the render pipeline.
package data

import (
	"encoding/json"
	"os"
	"path"
	"strings"

	"github.com/charmbracelet/log"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/mantlekit/mantle/internal/cascade"
	"github.com/mantlekit/mantle/internal/config"
	"github.com/mantlekit/mantle/pkg/resource"
	"github.com/mantlekit/mantle/pkg/theme"
)

// decoders maps recognized data-file extensions to their unmarshal
// functions.
var decoders = map[string]func([]byte, any) error{
	".json": json.Unmarshal,
	".yaml": yaml.Unmarshal,
	".yml":  yaml.Unmarshal,
	".toml": toml.Unmarshal,
}

// HasKnownExtension reports whether name carries a decodable data-file
// extension. Exposed so the CLI can reuse it as a scan filter.
func HasKnownExtension(name string) bool {
	_, ok := decoders[strings.ToLower(path.Ext(name))]
	return ok
}

// Load scans the data cascade and decodes each winning file into a merged
// map keyed by file stem ("site.yaml" becomes key "site"). The cascade
// merges by full relative name, so a user file with a different extension
// than the theme's counts as an addition, not an override; when two
// additions share a stem, the lexicographically later name wins the key.
// A file that fails to decode is logged and skipped, never fatal.
func Load(cfg *config.Config, th *theme.Descriptor) map[string]any {
	catalog := cascade.ScanTree(resource.Data, cfg, th, HasKnownExtension)

	merged := make(map[string]any, len(catalog))
	for _, name := range catalog.Names() {
		entry := catalog[name]

		raw, err := os.ReadFile(entry.Path)
		if err != nil {
			log.Warn("skipping unreadable data file", "path", entry.Path, "err", err)
			continue
		}

		decode := decoders[strings.ToLower(path.Ext(name))]
		var value any
		if err := decode(raw, &value); err != nil {
			log.Warn("skipping undecodable data file", "path", entry.Path, "err", err)
			continue
		}

		merged[keyFor(name)] = value
	}
	return merged
}

// keyFor converts a slash-relative catalog name into a data key: the
// extension is dropped and path separators become dots, so
// "authors/jane.yaml" is addressed as "authors.jane" in templates.
func keyFor(name string) string {
	stem := strings.TrimSuffix(name, path.Ext(name))
	return strings.ReplaceAll(stem, "/", ".")
}
