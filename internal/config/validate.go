package config

import (
	"fmt"
	"os"
)

// Validate vérifie la cohérence statique de la configuration : backend
// connu, fichiers de motifs accessibles. Les motifs eux-mêmes sont compilés
// (et leurs erreurs signalées ligne par ligne) par internal/patterns.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("config nil")
	}

	switch c.Backend {
	case BackendNative, BackendAstisub:
	default:
		return fmt.Errorf("backend inconnu dans la configuration : %q (attendu %q ou %q)",
			c.Backend, BackendNative, BackendAstisub)
	}

	for _, f := range c.PatternFiles {
		info, err := os.Stat(f)
		if err != nil {
			return fmt.Errorf("fichier de motifs %s inaccessible : %w", f, err)
		}
		if info.IsDir() {
			return fmt.Errorf("le fichier de motifs %s est un répertoire", f)
		}
	}

	return nil
}
