package ui

import "context"

// Answer : réponse de l'opérateur pour un candidat.
type Answer int

const (
	AnswerKeep      Answer = iota // conserver ce bloc
	AnswerRemove                  // supprimer ce bloc
	AnswerRemoveAll               // supprimer ce bloc et tous les suivants sans redemander
	AnswerKeepAll                 // conserver ce bloc et tous les suivants sans redemander
	AnswerQuit                    // arrêter là, les candidats restants sont conservés
)

// CandidatePrompt : tout ce que le terminal doit afficher pour un candidat.
type CandidatePrompt struct {
	Path    string // fichier en cours
	Text    string // texte complet du bloc
	Timing  string // ligne d'horodatage du bloc
	Index   int    // numéro du bloc (base 1)
	Total   int    // nombre de blocs du document
	Pattern string // motif déclencheur
}

type Interface interface {
	// PromptCandidate affiche le bloc et le motif déclencheur puis lit la
	// réponse de l'opérateur. Une entrée non reconnue fait redemander.
	// Une fin d'entrée (stdin fermé, usage non interactif) vaut AnswerQuit :
	// le lot dégrade en "tout conserver" au lieu de planter.
	PromptCandidate(ctx context.Context, p CandidatePrompt) Answer

	PrintInfo(ctx context.Context, s string)
	PrintError(ctx context.Context, s string)
}
