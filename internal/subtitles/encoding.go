package subtitles

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/ianaindex"
)

// decodeText convertit des octets bruts en texte UTF-8. La détection de jeu
// de caractères n'intervient que si le contenu n'est pas déjà de l'UTF-8
// valide (la grande majorité des fichiers modernes). Beaucoup de vieux
// fichiers SRT circulent en Latin-1 / Windows-1252.
func decodeText(raw []byte) string {
	if utf8.Valid(raw) {
		return string(raw)
	}

	detector := chardet.NewTextDetector()
	if res, err := detector.DetectBest(raw); err == nil && res != nil {
		if enc, eerr := ianaindex.IANA.Encoding(res.Charset); eerr == nil && enc != nil {
			if decoded, derr := enc.NewDecoder().Bytes(raw); derr == nil && utf8.Valid(decoded) {
				return string(decoded)
			}
		}
	}

	// dernier recours : supprimer les séquences invalides plutôt que
	// d'échouer, on préfère scanner un texte approximatif que rien
	return strings.ToValidUTF8(string(raw), "")
}

// applyCharfixes remplace les caractères problématiques du texte selon la
// table fixes (ex: ¶ -> ♪). Les clés sont triées pour un résultat
// déterministe quel que soit l'ordre d'itération de la map.
func applyCharfixes(text string, fixes map[string]string) string {
	if len(fixes) == 0 {
		return text
	}
	keys := make([]string, 0, len(fixes))
	for k := range fixes {
		if k != "" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		pairs = append(pairs, k, fixes[k])
	}
	return strings.NewReplacer(pairs...).Replace(text)
}
