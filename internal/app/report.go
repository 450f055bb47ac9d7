package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/brbsix/subnuker/internal/clipboard"
)

// report accumule l'issue de chaque fichier du lot pour le résumé final :
// fichiers modifiés, fichiers en échec, fichiers avec candidats conservés,
// fichiers sans correspondance.
type report struct {
	changed []string
	kept    []string
	noMatch []string
	errored []string

	// failed inclut aussi les cibles inaccessibles avant traitement
	failed int
}

func newReport() *report {
	return &report{}
}

func (r *report) record(path string, o fileOutcome) {
	switch o {
	case outcomeChanged:
		r.changed = append(r.changed, path)
	case outcomeKept:
		r.kept = append(r.kept, path)
	case outcomeNoMatch:
		r.noMatch = append(r.noMatch, path)
	case outcomeFailed:
		r.errored = append(r.errored, path)
		r.failed++
	}
}

// anyMatch : au moins un fichier du lot contenait un candidat.
func (r *report) anyMatch() bool {
	return len(r.changed) > 0 || len(r.kept) > 0
}

// String rend le résumé lisible du lot, une section par issue.
func (r *report) String() string {
	var sb strings.Builder

	sb.WriteString("\nRésumé :\n")
	writeSection(&sb, "modifié", r.changed)
	writeSection(&sb, "conservé", r.kept)
	writeSection(&sb, "sans correspondance", r.noMatch)
	writeSection(&sb, "en échec", r.errored)

	fmt.Fprintf(&sb, "%d modifié(s), %d conservé(s), %d sans correspondance, %d en échec",
		len(r.changed), len(r.kept), len(r.noMatch), r.failed)
	return sb.String()
}

func writeSection(sb *strings.Builder, label string, paths []string) {
	for _, p := range paths {
		fmt.Fprintf(sb, "  [%s] %s\n", label, p)
	}
}

// copyReport copie le résumé dans le presse-papier. Un presse-papier
// inaccessible (session SSH, serveur sans affichage) n'est qu'un warning.
func (a *App) copyReport(ctx context.Context, rep *report) {
	if err := clipboard.WriteAll(rep.String()); err != nil {
		a.ui.PrintError(ctx, fmt.Sprintf("warning: copie du rapport dans le presse-papier impossible : %v", err))
		return
	}
	a.ui.PrintInfo(ctx, "Rapport copié dans le presse-papier.")
}
