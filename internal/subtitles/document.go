package subtitles

import (
	"github.com/asticode/go-astisub"
	"github.com/brbsix/subnuker/pkg/model"
)

// Backend : contrat commun des deux modèles de document. Le backend est
// choisi une fois par exécution et n'est jamais mélangé au sein du cycle de
// vie d'un même fichier : un fichier chargé en natif est sauvé en natif.
type Backend interface {
	Name() string

	// Load parse le fichier en une séquence ordonnée de blocs.
	// Retourne *ParseError si le contenu est structurellement invalide.
	Load(path string) (*Document, error)

	// Save renumérote les blocs de 1 à N dans l'ordre final et réécrit le
	// fichier d'origine dans son format d'origine. À n'appeler que si le
	// document a effectivement changé.
	Save(doc *Document) error

	// Extensions : extensions de fichiers gérées (minuscules, avec point).
	Extensions() []string
}

// Document : séquence ordonnée de blocs + identité de la source. L'ordre des
// blocs est l'ordre de présentation du fichier d'entrée ; il est préservé,
// jamais re-trié. Possédé exclusivement par le traitement d'un fichier, puis
// écrit ou jeté.
type Document struct {
	Path   string
	Blocks []model.Block

	backend Backend

	// modified : le texte a changé au chargement (correction de caractères) ;
	// le document doit être réécrit même sans suppression de bloc.
	modified bool

	// ast : structure astisub d'origine, non nil uniquement pour le backend
	// délégué. Filtrée en parallèle de Blocks par Apply pour préserver les
	// conventions du format source (styles, régions).
	ast *astisub.Subtitles
}

// Save réécrit le document via le backend qui l'a chargé.
func (d *Document) Save() error { return d.backend.Save(d) }

// Modified indique si le chargement a déjà altéré le texte (charfix).
func (d *Document) Modified() bool { return d.modified }

func (d *Document) Len() int { return len(d.Blocks) }
