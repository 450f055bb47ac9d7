package scan

import (
	"github.com/brbsix/subnuker/internal/patterns"
	"github.com/brbsix/subnuker/internal/subtitles"
	"github.com/brbsix/subnuker/pkg/model"
)

// Candidate : un bloc suspect et le premier motif qui a déclenché. Un bloc
// ne produit qu'un seul candidat même si plusieurs motifs correspondent.
type Candidate struct {
	Block   model.Block
	Pattern patterns.Pattern
}

// Scan évalue chaque bloc du document contre le jeu de motifs et retourne
// les candidats dans l'ordre du document. Le texte testé est le texte
// multi-lignes complet du bloc, sauts de ligne compris, pour que les motifs
// ancrés se comportent de manière prévisible. Fonction pure : aucune
// entrée/sortie, le document n'est pas modifié.
func Scan(doc *subtitles.Document, set *patterns.Set) []Candidate {
	var out []Candidate
	for _, b := range doc.Blocks {
		if p, ok := set.Match(b.Text); ok {
			out = append(out, Candidate{Block: b, Pattern: p})
		}
	}
	return out
}
