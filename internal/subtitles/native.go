package subtitles

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/brbsix/subnuker/internal/fsutil"
	"github.com/brbsix/subnuker/pkg/model"
)

// NativeBackend lit et écrit le format natif (SRT) sans bibliothèque
// externe : ligne de numéro, ligne d'horodatage, une ou plusieurs lignes de
// texte, une ligne vide entre les blocs.
type NativeBackend struct {
	// Charfixes : remplacements de caractères appliqués au texte entier
	// au chargement (voir config). Une correction marque le document
	// modifié, il sera réécrit même sans suppression.
	Charfixes map[string]string
}

func NewNative(charfixes map[string]string) *NativeBackend {
	return &NativeBackend{Charfixes: charfixes}
}

func (n *NativeBackend) Name() string { return "native" }

func (n *NativeBackend) Extensions() []string { return []string{".srt"} }

var timingRe = regexp.MustCompile(`^(\d{2}:\d{2}:\d{2},\d{3}) --> (\d{2}:\d{2}:\d{2},\d{3})$`)

func (n *NativeBackend) Load(path string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("lecture de %s impossible : %w", path, err)
	}

	text := decodeText(raw)

	doc := &Document{Path: path, backend: n}

	// correction des caractères problématiques avant le parse
	if fixed := applyCharfixes(text, n.Charfixes); fixed != text {
		text = fixed
		doc.modified = true
	}

	blocks, err := parseSRT(path, text)
	if err != nil {
		return nil, err
	}
	doc.Blocks = blocks
	return doc, nil
}

// parseSRT découpe text en blocs. La numérotation du fichier d'entrée est
// validée syntaxiquement mais pas sa monotonie : les index sont réassignés
// de 1 à N dans l'ordre de lecture (ils seront de toute façon renumérotés
// à la sauvegarde).
func parseSRT(path, text string) ([]model.Block, error) {
	text = strings.TrimPrefix(text, "\ufeff")
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

	var blocks []model.Block
	i := 0
	for i < len(lines) {
		// sauter les lignes vides entre les blocs
		for i < len(lines) && strings.TrimSpace(lines[i]) == "" {
			i++
		}
		if i >= len(lines) {
			break
		}

		seq := strings.TrimSpace(lines[i])
		if _, err := strconv.Atoi(seq); err != nil {
			return nil, &ParseError{Path: path, Line: i + 1,
				Msg: fmt.Sprintf("ligne de séquence invalide : %q", seq)}
		}
		i++

		if i >= len(lines) {
			return nil, &ParseError{Path: path, Line: i,
				Msg: "bloc tronqué : ligne d'horodatage manquante"}
		}
		m := timingRe.FindStringSubmatch(strings.TrimSpace(lines[i]))
		if m == nil {
			return nil, &ParseError{Path: path, Line: i + 1,
				Msg: fmt.Sprintf("ligne d'horodatage invalide : %q", lines[i])}
		}
		start, err := parseTimestamp(m[1])
		if err != nil {
			return nil, &ParseError{Path: path, Line: i + 1, Msg: err.Error()}
		}
		end, err := parseTimestamp(m[2])
		if err != nil {
			return nil, &ParseError{Path: path, Line: i + 1, Msg: err.Error()}
		}
		if end < start {
			return nil, &ParseError{Path: path, Line: i + 1,
				Msg: fmt.Sprintf("horodatage incohérent : fin %s avant début %s", m[2], m[1])}
		}
		i++

		var texts []string
		for i < len(lines) && strings.TrimSpace(lines[i]) != "" {
			texts = append(texts, lines[i])
			i++
		}
		if len(texts) == 0 {
			return nil, &ParseError{Path: path, Line: i,
				Msg: "bloc sans texte"}
		}

		blocks = append(blocks, model.Block{
			Index: len(blocks) + 1,
			Start: start,
			End:   end,
			Text:  strings.Join(texts, "\n"),
		})
	}

	if len(blocks) == 0 {
		return nil, &ParseError{Path: path, Line: 1,
			Msg: "aucun bloc de sous-titre trouvé"}
	}
	return blocks, nil
}

// parseTimestamp lit "HH:MM:SS,mmm" (le format est déjà garanti par timingRe).
func parseTimestamp(s string) (time.Duration, error) {
	var h, m, sec, ms int
	if _, err := fmt.Sscanf(s, "%d:%d:%d,%d", &h, &m, &sec, &ms); err != nil {
		return 0, fmt.Errorf("horodatage invalide %q", s)
	}
	return time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(sec)*time.Second +
		time.Duration(ms)*time.Millisecond, nil
}

// Save sérialise les blocs survivants, renumérotés de 1 à N, séparés par
// une ligne vide, avec une fin de ligne finale. Écriture atomique : le
// fichier d'origine n'est remplacé qu'une fois le nouveau contenu complet.
func (n *NativeBackend) Save(doc *Document) error {
	var sb strings.Builder
	for i, b := range doc.Blocks {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(strconv.Itoa(i + 1))
		sb.WriteString("\n")
		sb.WriteString(b.Timing())
		sb.WriteString("\n")
		sb.WriteString(b.Text)
		sb.WriteString("\n")
	}
	if err := fsutil.WriteFileAtomic(doc.Path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("écriture de %s impossible : %w", doc.Path, err)
	}
	return nil
}
