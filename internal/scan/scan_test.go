package scan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/brbsix/subnuker/internal/patterns"
	"github.com/brbsix/subnuker/internal/subtitles"
)

const sampleSRT = `1
00:00:01,000 --> 00:00:02,000
Rien à signaler ici.

2
00:00:03,000 --> 00:00:04,000
Subtitles downloaded
from www.example.com

3
00:00:05,000 --> 00:00:06,000
Dialogue normal.

4
00:00:07,000 --> 00:00:08,000
SUBSCRIBE to our channel!
`

func loadSample(t *testing.T) *subtitles.Document {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.srt")
	if err := os.WriteFile(path, []byte(sampleSRT), 0o644); err != nil {
		t.Fatal(err)
	}
	doc, err := subtitles.NewNative(nil).Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return doc
}

func newSet(t *testing.T, mode patterns.Mode, pats ...string) *patterns.Set {
	t.Helper()
	set := patterns.NewSet(patterns.Options{Mode: mode})
	if err := set.Add("test", pats); err != nil {
		t.Fatalf("Add: %v", err)
	}
	return set
}

func TestScanYieldsCandidatesInDocumentOrder(t *testing.T) {
	doc := loadSample(t)
	set := newSet(t, patterns.ModePlain, "subscribe", "www.")

	got := Scan(doc, set)
	if len(got) != 2 {
		t.Fatalf("candidats = %d; want 2", len(got))
	}
	// ordre du document, pas ordre des motifs
	if got[0].Block.Index != 2 || got[1].Block.Index != 4 {
		t.Errorf("indices candidats = %d, %d; want 2, 4", got[0].Block.Index, got[1].Block.Index)
	}
}

func TestScanRecordsFirstMatchingPatternOnly(t *testing.T) {
	doc := loadSample(t)
	// le bloc 2 correspond aux deux motifs ; un seul candidat, avec le
	// premier motif de l'ordre des sources
	set := newSet(t, patterns.ModePlain, "subtitles", "www.")

	got := Scan(doc, set)
	if len(got) != 1 {
		t.Fatalf("candidats = %d; want 1", len(got))
	}
	if got[0].Pattern.Raw != "subtitles" {
		t.Errorf("motif rapporté = %q; want %q", got[0].Pattern.Raw, "subtitles")
	}
}

func TestScanMatchesAcrossLineBreaks(t *testing.T) {
	doc := loadSample(t)
	// le texte testé est le bloc entier, sauts de ligne préservés : un
	// motif regex peut s'ancrer sur une limite de ligne interne
	set := newSet(t, patterns.ModeRegex, `downloaded\nfrom`)

	got := Scan(doc, set)
	if len(got) != 1 || got[0].Block.Index != 2 {
		t.Fatalf("le motif multi-lignes devrait attraper le bloc 2, obtenu %v", got)
	}
}

func TestScanNoMatches(t *testing.T) {
	doc := loadSample(t)
	set := newSet(t, patterns.ModePlain, "introuvable")

	if got := Scan(doc, set); len(got) != 0 {
		t.Fatalf("candidats = %d; want 0", len(got))
	}
}

func TestScanDoesNotMutateDocument(t *testing.T) {
	doc := loadSample(t)
	before := make([]string, doc.Len())
	for i, b := range doc.Blocks {
		before[i] = b.Text
	}

	Scan(doc, newSet(t, patterns.ModePlain, "www."))

	for i, b := range doc.Blocks {
		if b.Text != before[i] {
			t.Errorf("bloc %d modifié par Scan", i)
		}
	}
	if doc.Modified() {
		t.Error("Scan ne doit pas marquer le document modifié")
	}
}
