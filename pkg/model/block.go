package model

import (
	"fmt"
	"strings"
	"time"
)

// Block représente une cellule de sous-titre : un numéro de séquence
// (base 1, contigu au sein d'un document), un intervalle de temps et le
// texte affiché (une ou plusieurs lignes jointes par '\n').
type Block struct {
	Index int
	Start time.Duration
	End   time.Duration
	Text  string
}

// FormatTimestamp formate une durée en "HH:MM:SS,mmm" (format SRT).
// Exemple : 65s -> "00:01:05,000".
func FormatTimestamp(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second
	d -= s * time.Second
	ms := d / time.Millisecond
	return fmt.Sprintf("%02d:%02d:%02d,%03d", h, m, s, ms)
}

// Timing rend la ligne d'horodatage du bloc, ex:
// "00:01:05,000 --> 00:01:07,250".
func (b Block) Timing() string {
	return FormatTimestamp(b.Start) + " --> " + FormatTimestamp(b.End)
}

// Lines découpe le texte du bloc en lignes individuelles.
func (b Block) Lines() []string {
	return strings.Split(b.Text, "\n")
}

// String implémente fmt.Stringer pour Block (utile pour le debug).
func (b Block) String() string {
	return fmt.Sprintf("Block{%d %s %q}", b.Index, b.Timing(), b.Text)
}
