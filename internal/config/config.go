package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/brbsix/subnuker/internal/assets"
	"github.com/brbsix/subnuker/internal/bootstrap"
	"gopkg.in/yaml.v3"
)

const CurrentConfigVersion = 1

// Noms de backend acceptés dans la config et sur la ligne de commande.
const (
	BackendNative  = "native"
	BackendAstisub = "astisub"
)

// struct pour les paramètres de configuration
type Config struct {
	// Backend de lecture/écriture : "native" ou "astisub"
	Backend string `yaml:"backend"`

	// Correspondance
	Regex         bool `yaml:"regex"`
	CaseSensitive bool `yaml:"case_sensitive"`

	// Mode non interactif : oui à toutes les suppressions
	AutoYes bool `yaml:"auto_yes"`

	// Fichiers de motifs chargés en plus de la ligne de commande
	PatternFiles []string `yaml:"pattern_files"`

	// Remplacements de caractères appliqués au chargement (backend natif)
	Charfixes map[string]string `yaml:"charfixes"`

	// Rapport de fin de lot copié dans le presse-papier
	CopyReport bool `yaml:"copy_report"`

	// Utilisation depuis une interface graphique : pause avant sortie
	// quand la recherche ne retourne rien
	GUI bool `yaml:"gui"`

	ConfigVersion int `yaml:"config_version"`

	configFilePath string
}

// configuration par défaut (fallback si l'asset embarqué est manquant)
func defaultConfig() *Config {
	c := &Config{}

	c.Backend = BackendNative
	c.Regex = false
	c.CaseSensitive = false
	c.AutoYes = false
	c.PatternFiles = nil
	c.Charfixes = map[string]string{"¶": "♪"}
	c.CopyReport = false
	c.GUI = false

	c.ConfigVersion = CurrentConfigVersion

	return c
}

// Load lit la config ; si le fichier n'existe pas, on le crée à partir de
// l'exemple embarqué dans internal/assets.
func Load(path string) (*Config, error) {
	if path == "" {
		path = "subnuker.yaml"
	}

	// si le fichier n'existe pas -> créer à partir de l'asset embarqué
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := bootstrap.EnsureConfigPresent(path, assets.Embedded, assets.DefaultConfigAsset); err != nil {
			return nil, fmt.Errorf("échec de création du fichier de configuration par défaut : %w", err)
		}
	}

	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("lecture du fichier de configuration %s impossible : %w", path, err)
	}

	// On déserialise dans cfg initialisé : les champs absents conservent
	// les valeurs par défaut.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("analyse du fichier de configuration %s impossible : %w", path, err)
	}
	cfg.configFilePath = path

	cfg.normalizeConfig()

	// gestion de version : si le fichier est plus ancien -> migrer
	if cfg.ConfigVersion < CurrentConfigVersion {
		if err := orchestrateConfigUpgrade(cfg, cfg.ConfigVersion); err != nil {
			return nil, fmt.Errorf("échec de mise à niveau de la configuration : %w", err)
		}
		cfg.normalizeConfig()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) normalizeConfig() {
	c.Backend = strings.ToLower(strings.TrimSpace(c.Backend))
	if c.Backend == "" {
		c.Backend = BackendNative
	}

	// une map explicitement vide dans le YAML désactive les charfixes ;
	// une map absente conserve le défaut (géré par defaultConfig)
	if c.Charfixes == nil {
		c.Charfixes = map[string]string{}
	}

	// nettoyer les chemins de fichiers de motifs vides
	files := c.PatternFiles[:0]
	for _, f := range c.PatternFiles {
		if strings.TrimSpace(f) != "" {
			files = append(files, f)
		}
	}
	c.PatternFiles = files
}
