package subtitles

import (
	"fmt"
	"strings"

	"github.com/asticode/go-astisub"
	"github.com/brbsix/subnuker/pkg/model"
)

// DelegatedBackend confie lecture et écriture à go-astisub, qui couvre les
// formats riches (SSA/ASS, STL, TTML, WebVTT) en plus du SRT. Le format de
// sortie est déterminé par l'extension du fichier, donc un fichier relu est
// réécrit dans son format d'origine.
type DelegatedBackend struct{}

func NewDelegated() *DelegatedBackend { return &DelegatedBackend{} }

func (d *DelegatedBackend) Name() string { return "astisub" }

func (d *DelegatedBackend) Extensions() []string {
	return []string{".srt", ".ssa", ".ass", ".stl", ".ttml", ".vtt"}
}

func (d *DelegatedBackend) Load(path string) (*Document, error) {
	subs, err := astisub.OpenFile(path)
	if err != nil {
		// même taxonomie que le backend natif : l'appelant ne branche
		// jamais sur l'identité du backend
		return nil, &ParseError{Path: path, Msg: "ouverture via astisub impossible", Err: err}
	}
	if len(subs.Items) == 0 {
		return nil, &ParseError{Path: path, Msg: "aucun bloc de sous-titre trouvé"}
	}

	blocks := make([]model.Block, 0, len(subs.Items))
	for i, item := range subs.Items {
		blocks = append(blocks, model.Block{
			Index: i + 1,
			Start: item.StartAt,
			End:   item.EndAt,
			Text:  itemText(item),
		})
	}
	return &Document{Path: path, Blocks: blocks, backend: d, ast: subs}, nil
}

// itemText reconstruit le texte multi-lignes d'un item astisub, lignes
// jointes par '\n' comme dans le backend natif.
func itemText(item *astisub.Item) string {
	lines := make([]string, 0, len(item.Lines))
	for _, l := range item.Lines {
		lines = append(lines, l.String())
	}
	return strings.Join(lines, "\n")
}

func (d *DelegatedBackend) Save(doc *Document) error {
	if doc.ast == nil {
		return fmt.Errorf("document %s non chargé via le backend astisub", doc.Path)
	}
	// la renumérotation est portée par les writers astisub (position dans
	// Items) ; les styles et régions du fichier source sont conservés
	if err := doc.ast.Write(doc.Path); err != nil {
		return fmt.Errorf("écriture via astisub de %s impossible : %w", doc.Path, err)
	}
	return nil
}
