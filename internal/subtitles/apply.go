package subtitles

import "github.com/brbsix/subnuker/pkg/model"

// Apply retire du document les blocs dont l'index (base 1) figure dans
// removals, renumérote le reste de 1 à N en préservant l'ordre relatif,
// les horodatages et le texte, et retourne (document, changé).
//
// Quand removals est vide ou ne recoupe aucun index du document, le document
// d'origine est retourné tel quel avec changé == false : l'appelant peut
// alors sauter la sauvegarde.
func Apply(doc *Document, removals map[int]bool) (*Document, bool) {
	if doc == nil {
		return nil, false
	}

	effective := 0
	for _, b := range doc.Blocks {
		if removals[b.Index] {
			effective++
		}
	}
	if effective == 0 {
		return doc, false
	}

	kept := make([]model.Block, 0, len(doc.Blocks)-effective)
	out := &Document{Path: doc.Path, backend: doc.backend, modified: true}

	// pour le backend délégué, filtrer les items astisub en parallèle des
	// blocs : bloc i (base 1) <-> ast.Items[i-1]
	if doc.ast != nil {
		astCopy := *doc.ast
		astCopy.Items = nil
		out.ast = &astCopy
	}

	for pos, b := range doc.Blocks {
		if removals[b.Index] {
			continue
		}
		b.Index = len(kept) + 1
		kept = append(kept, b)
		if out.ast != nil && pos < len(doc.ast.Items) {
			out.ast.Items = append(out.ast.Items, doc.ast.Items[pos])
		}
	}

	out.Blocks = kept
	return out, true
}
