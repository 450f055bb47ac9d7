package subtitles

import (
	"testing"
	"time"

	"github.com/brbsix/subnuker/pkg/model"
)

func docWithBlocks(n int) *Document {
	blocks := make([]model.Block, 0, n)
	for i := 1; i <= n; i++ {
		blocks = append(blocks, model.Block{
			Index: i,
			Start: time.Duration(i) * time.Second,
			End:   time.Duration(i)*time.Second + 500*time.Millisecond,
			Text:  "bloc " + string(rune('A'+i-1)),
		})
	}
	return &Document{Path: "test.srt", Blocks: blocks, backend: NewNative(nil)}
}

func TestApplyEmptyRemovalIsIdentity(t *testing.T) {
	doc := docWithBlocks(4)

	out, changed := Apply(doc, map[int]bool{})
	if changed {
		t.Error("ensemble vide : changed devrait être false")
	}
	if out != doc {
		t.Error("ensemble vide : le document d'origine devrait être retourné tel quel")
	}
}

func TestApplyUnknownIndicesIgnored(t *testing.T) {
	doc := docWithBlocks(3)

	out, changed := Apply(doc, map[int]bool{42: true, 99: true})
	if changed {
		t.Error("indices hors document : changed devrait être false")
	}
	if out.Len() != 3 {
		t.Errorf("Len = %d; want 3", out.Len())
	}
}

func TestApplyFiltersAndRenumbers(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		removals []int
		wantLen  int
	}{
		{"suppression au milieu", 5, []int{3}, 4},
		{"premier et dernier", 5, []int{1, 5}, 3},
		{"tout sauf un", 3, []int{1, 2}, 1},
		{"tout", 3, []int{1, 2, 3}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			doc := docWithBlocks(tc.total)
			removals := make(map[int]bool, len(tc.removals))
			for _, i := range tc.removals {
				removals[i] = true
			}

			// mémoriser le contenu attendu des survivants, dans l'ordre
			var wantTexts []string
			for _, b := range doc.Blocks {
				if !removals[b.Index] {
					wantTexts = append(wantTexts, b.Text)
				}
			}

			out, changed := Apply(doc, removals)
			if !changed {
				t.Fatal("changed devrait être true")
			}
			if out.Len() != tc.wantLen {
				t.Fatalf("Len = %d; want %d", out.Len(), tc.wantLen)
			}
			for i, b := range out.Blocks {
				// renumérotation contiguë à partir de 1
				if b.Index != i+1 {
					t.Errorf("Blocks[%d].Index = %d; want %d", i, b.Index, i+1)
				}
				// ordre relatif et contenu préservés
				if b.Text != wantTexts[i] {
					t.Errorf("Blocks[%d].Text = %q; want %q", i, b.Text, wantTexts[i])
				}
			}
			if !out.Modified() {
				t.Error("un document filtré devrait être marqué modifié")
			}
		})
	}
}

func TestApplyPreservesTimings(t *testing.T) {
	doc := docWithBlocks(3)
	wantStart := doc.Blocks[2].Start
	wantEnd := doc.Blocks[2].End

	out, _ := Apply(doc, map[int]bool{2: true})

	last := out.Blocks[len(out.Blocks)-1]
	if last.Start != wantStart || last.End != wantEnd {
		t.Errorf("horodatages modifiés : %v-%v; want %v-%v", last.Start, last.End, wantStart, wantEnd)
	}
}
