package remover

import (
	"context"

	"github.com/brbsix/subnuker/internal/scan"
	"github.com/brbsix/subnuker/internal/ui"
)

// Result : sortie de la boucle de décision pour un fichier.
type Result struct {
	// Removals : indices (base 1) des blocs à supprimer. L'appelant dérive
	// la séquence survivante comme le complément.
	Removals map[int]bool

	// Quit : l'opérateur a demandé l'arrêt. Les décisions déjà prises dans
	// Removals restent valables ; les candidats restants (de ce fichier et
	// des fichiers suivants) sont conservés.
	Quit bool
}

// Resolve déroule la boucle de confirmation : chaque candidat est présenté
// à l'opérateur (état Prompted) jusqu'à une réponse reconnue (état Decided).
// Les réponses "tous" / "garder-tout" posent un override de session : tous
// les candidats suivants sont décidés sans nouvelle question. La fin
// d'entrée est traitée par l'UI comme un quit, jamais comme une erreur.
//
// autoYes court-circuite toute interaction : chaque candidat est supprimé
// (mode -y/--yes, lot non interactif).
func Resolve(ctx context.Context, path string, total int, candidates []scan.Candidate, term ui.Interface, autoYes bool) Result {
	res := Result{Removals: make(map[int]bool, len(candidates))}

	if autoYes {
		for _, c := range candidates {
			res.Removals[c.Block.Index] = true
		}
		return res
	}

	var override ui.Answer
	hasOverride := false

	for _, c := range candidates {
		if hasOverride {
			if override == ui.AnswerRemoveAll {
				res.Removals[c.Block.Index] = true
			}
			continue
		}

		answer := term.PromptCandidate(ctx, ui.CandidatePrompt{
			Path:    path,
			Text:    c.Block.Text,
			Timing:  c.Block.Timing(),
			Index:   c.Block.Index,
			Total:   total,
			Pattern: c.Pattern.String(),
		})

		switch answer {
		case ui.AnswerRemove:
			res.Removals[c.Block.Index] = true
		case ui.AnswerKeep:
			// rien : le bloc reste dans le document
		case ui.AnswerRemoveAll:
			res.Removals[c.Block.Index] = true
			override, hasOverride = ui.AnswerRemoveAll, true
		case ui.AnswerKeepAll:
			override, hasOverride = ui.AnswerKeepAll, true
		case ui.AnswerQuit:
			res.Quit = true
			return res
		}
	}
	return res
}
