package subtitles

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const sampleSRT = `1
00:00:01,000 --> 00:00:02,500
Bonjour.

2
00:00:03,000 --> 00:00:04,000
Deux lignes
de texte.

3
00:00:05,250 --> 00:00:06,750
Dernier bloc.
`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNativeLoad(t *testing.T) {
	path := writeTemp(t, "sample.srt", sampleSRT)

	doc, err := NewNative(nil).Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if doc.Len() != 3 {
		t.Fatalf("Len = %d; want 3", doc.Len())
	}

	b := doc.Blocks[1]
	if b.Index != 2 {
		t.Errorf("Index = %d; want 2", b.Index)
	}
	if b.Start != 3*time.Second {
		t.Errorf("Start = %v; want 3s", b.Start)
	}
	if b.End != 4*time.Second {
		t.Errorf("End = %v; want 4s", b.End)
	}
	// le texte multi-lignes est conservé avec ses sauts de ligne
	if b.Text != "Deux lignes\nde texte." {
		t.Errorf("Text = %q", b.Text)
	}
	if doc.Modified() {
		t.Error("pas de charfix : le document ne devrait pas être marqué modifié")
	}
}

func TestNativeLoadCRLFAndBOM(t *testing.T) {
	content := "\ufeff1\r\n00:00:01,000 --> 00:00:02,000\r\nHello.\r\n\r\n2\r\n00:00:03,000 --> 00:00:04,000\r\nWorld.\r\n"
	path := writeTemp(t, "crlf.srt", content)

	doc, err := NewNative(nil).Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if doc.Len() != 2 {
		t.Fatalf("Len = %d; want 2", doc.Len())
	}
	if doc.Blocks[0].Text != "Hello." {
		t.Errorf("Text = %q; want %q", doc.Blocks[0].Text, "Hello.")
	}
}

func TestNativeLoadRenumbersNonMonotonic(t *testing.T) {
	// numérotation non monotone tolérée : renumérotée, pas rejetée
	content := "7\n00:00:01,000 --> 00:00:02,000\nA.\n\n3\n00:00:03,000 --> 00:00:04,000\nB.\n"
	path := writeTemp(t, "weird.srt", content)

	doc, err := NewNative(nil).Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	for i, b := range doc.Blocks {
		if b.Index != i+1 {
			t.Errorf("Blocks[%d].Index = %d; want %d", i, b.Index, i+1)
		}
	}
}

func TestNativeLoadParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantLine int
	}{
		{
			name:     "ligne d'horodatage manquante",
			content:  "1\npas un horodatage\ntexte\n",
			wantLine: 2,
		},
		{
			name:     "séquence invalide",
			content:  "abc\n00:00:01,000 --> 00:00:02,000\ntexte\n",
			wantLine: 1,
		},
		{
			name:     "fin avant début",
			content:  "1\n00:00:05,000 --> 00:00:02,000\ntexte\n",
			wantLine: 2,
		},
		{
			name:     "fichier vide",
			content:  "\n\n",
			wantLine: 1,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeTemp(t, "bad.srt", tc.content)
			_, err := NewNative(nil).Load(path)

			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("attendu *ParseError, obtenu %v", err)
			}
			if perr.Path != path {
				t.Errorf("Path = %q; want %q", perr.Path, path)
			}
			if perr.Line != tc.wantLine {
				t.Errorf("Line = %d; want %d", perr.Line, tc.wantLine)
			}
		})
	}
}

func TestNativeRoundTrip(t *testing.T) {
	path := writeTemp(t, "roundtrip.srt", sampleSRT)
	backend := NewNative(nil)

	doc, err := backend.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := doc.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// relecture : blocs sémantiquement identiques (mêmes temps, même texte)
	again, err := backend.Load(path)
	if err != nil {
		t.Fatalf("Load après Save: %v", err)
	}
	if again.Len() != doc.Len() {
		t.Fatalf("Len = %d; want %d", again.Len(), doc.Len())
	}
	for i := range doc.Blocks {
		if doc.Blocks[i] != again.Blocks[i] {
			t.Errorf("bloc %d différent après aller-retour :\n%v\n%v", i, doc.Blocks[i], again.Blocks[i])
		}
	}

	// le contenu réécrit est byte-identique à l'original bien formé
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != sampleSRT {
		t.Errorf("contenu réécrit différent :\n%q\nwant:\n%q", string(data), sampleSRT)
	}
}

func TestNativeCharfixMarksModified(t *testing.T) {
	content := "1\n00:00:01,000 --> 00:00:02,000\n¶ La la la ¶\n"
	path := writeTemp(t, "charfix.srt", content)

	doc, err := NewNative(map[string]string{"¶": "♪"}).Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !doc.Modified() {
		t.Error("une correction de caractères devrait marquer le document modifié")
	}
	if doc.Blocks[0].Text != "♪ La la la ♪" {
		t.Errorf("Text = %q", doc.Blocks[0].Text)
	}
}

func TestNativeCharfixNoOpLeavesUnmodified(t *testing.T) {
	path := writeTemp(t, "clean.srt", sampleSRT)

	doc, err := NewNative(map[string]string{"¶": "♪"}).Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if doc.Modified() {
		t.Error("aucun caractère à corriger : le document ne devrait pas être marqué modifié")
	}
}

func TestDecodeTextLatin1(t *testing.T) {
	// "Générique précédent réalisé en Français, déjà sous-titré" en Latin-1 :
	// les accents en octets 0xE9/0xE8 etc., UTF-8 invalide
	latin1 := []byte("G\xe9n\xe9rique pr\xe9c\xe9dent r\xe9alis\xe9 en Fran\xe7ais, d\xe9j\xe0 sous-titr\xe9 par quelqu'un d'autre \xe0 l'\xe9poque")

	got := decodeText(latin1)
	if !strings.Contains(got, "Générique") || !strings.Contains(got, "Français") {
		t.Errorf("décodage Latin-1 raté : %q", got)
	}
}

func TestDecodeTextUTF8Passthrough(t *testing.T) {
	in := "déjà de l'UTF-8 valide ♪"
	if got := decodeText([]byte(in)); got != in {
		t.Errorf("decodeText = %q; want %q", got, in)
	}
}
