// Command loomlint validates Loom capability manifests.
//
// Component packs ship a loom.yaml manifest declaring which properties of
// their custom elements may be controlled. loomlint checks the manifest
// offline so declaration mistakes fail in CI instead of at mount time.
//
// Usage:
//
//	loomlint [-v] <manifest.yaml> [...]
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/go-loom/loom/pkg/registry"
)

func main() {
	verbose := flag.Bool("v", false, "print every declared capability, not just problems")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: loomlint [-v] <manifest.yaml> [...]")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	failed := false
	for _, path := range flag.Args() {
		m, err := registry.LoadManifest(path)
		if err != nil {
			log.Error().Str("manifest", path).Err(err).Msg("invalid manifest")
			failed = true
			continue
		}

		log.Info().
			Str("manifest", path).
			Str("schema", m.Schema).
			Int("elements", len(m.Elements)).
			Msg("manifest ok")

		if *verbose {
			for _, entry := range m.Elements {
				for _, cap := range entry.Capabilities {
					log.Info().
						Str("tag", entry.Tag).
						Str("property", cap.Property).
						Str("events", strings.Join(cap.Events, ",")).
						Msg("capability")
				}
			}
		}
	}

	if failed {
		os.Exit(1)
	}
}
