package patterns

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/brbsix/subnuker/internal/assets"
)

// Mode de correspondance d'un jeu de motifs.
type Mode int

const (
	ModePlain Mode = iota // sous-chaîne littérale
	ModeRegex             // expression régulière (syntaxe RE2)
)

func (m Mode) String() string {
	if m == ModeRegex {
		return "regex"
	}
	return "plaintext"
}

// Identifiants de source pour les motifs qui ne viennent pas d'un fichier.
const (
	SourceBuiltin = "builtin"
	SourceInline  = "inline"
)

// Pattern : un motif compilé, soit une aiguille littérale soit une regexp.
// Source et Line identifient la provenance pour les messages d'erreur et
// l'affichage du motif déclencheur.
type Pattern struct {
	Source string
	Line   int
	Raw    string

	re     *regexp.Regexp // non nil en mode regex
	needle string         // aiguille pré-normalisée en mode plaintext
	fold   bool           // comparaison insensible à la casse
}

// Match teste si text contient l'aiguille ou satisfait la regexp.
func (p Pattern) Match(text string) bool {
	if p.re != nil {
		return p.re.MatchString(text)
	}
	if p.fold {
		return strings.Contains(strings.ToLower(text), p.needle)
	}
	return strings.Contains(text, p.needle)
}

func (p Pattern) String() string { return p.Raw }

// CompileError : motif invalide. Porte la source et la ligne fautive pour que
// l'utilisateur puisse corriger son fichier de motifs. Fatale pour le lot
// entier : un motif ignoré en silence fausserait la détection.
type CompileError struct {
	Source string
	Line   int
	Raw    string
	Err    error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("motif invalide %q (%s:%d) : %v", e.Raw, e.Source, e.Line, e.Err)
}

func (e *CompileError) Unwrap() error { return e.Err }

// Options de compilation d'un jeu de motifs.
type Options struct {
	Mode          Mode
	CaseSensitive bool
}

// Set : collection ordonnée de motifs compilés. L'ordre d'itération est
// l'ordre des sources (builtin, puis fichiers dans l'ordre donné, puis
// inline) — il ne compte que pour désigner le motif déclencheur, pas pour
// le résultat de la correspondance. Les doublons ne sont pas dédupliqués.
type Set struct {
	opts Options
	list []Pattern
}

func NewSet(opts Options) *Set {
	return &Set{opts: opts}
}

// Add compile chaque ligne non vide et non commentaire de lines (numérotées
// à partir de 1) et l'ajoute au jeu. La première erreur de compilation
// interrompt tout.
func (s *Set) Add(source string, lines []string) error {
	for i, raw := range lines {
		line := strings.TrimRight(raw, "\r\n")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		p, err := s.compile(source, i+1, line)
		if err != nil {
			return err
		}
		s.list = append(s.list, p)
	}
	return nil
}

// AddFile charge un fichier de motifs (une ligne = un motif).
func (s *Set) AddFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("lecture du fichier de motifs %s impossible : %w", path, err)
	}
	return s.Add(path, strings.Split(string(data), "\n"))
}

// AddInline ajoute un unique motif passé en ligne de commande.
func (s *Set) AddInline(raw string) error {
	return s.Add(SourceInline, []string{raw})
}

// AddDefaults charge la liste de motifs par défaut embarquée correspondant
// au mode courant.
func (s *Set) AddDefaults() error {
	name := assets.DefaultTermsAsset
	if s.opts.Mode == ModeRegex {
		name = assets.DefaultRegexAsset
	}
	data, err := assets.Embedded.ReadFile(name)
	if err != nil {
		return fmt.Errorf("lecture des motifs embarqués %s impossible : %w", name, err)
	}
	return s.Add(SourceBuiltin, strings.Split(string(data), "\n"))
}

// Match retourne le premier motif (dans l'ordre des sources) correspondant
// à text, et false si aucun ne correspond.
func (s *Set) Match(text string) (Pattern, bool) {
	for _, p := range s.list {
		if p.Match(text) {
			return p, true
		}
	}
	return Pattern{}, false
}

func (s *Set) Len() int { return len(s.list) }

// Patterns expose la liste compilée (ordre des sources), pour l'affichage.
func (s *Set) Patterns() []Pattern { return s.list }

func (s *Set) compile(source string, line int, raw string) (Pattern, error) {
	p := Pattern{Source: source, Line: line, Raw: raw}

	if s.opts.Mode == ModeRegex {
		expr := raw
		// insensible à la casse par défaut, sauf si le motif fixe déjà
		// ses propres drapeaux
		if !s.opts.CaseSensitive && !strings.HasPrefix(expr, "(?") {
			expr = "(?i)" + expr
		}
		re, err := regexp.Compile(expr)
		if err != nil {
			return Pattern{}, &CompileError{Source: source, Line: line, Raw: raw, Err: err}
		}
		p.re = re
		return p, nil
	}

	if s.opts.CaseSensitive {
		p.needle = raw
	} else {
		p.needle = strings.ToLower(raw)
		p.fold = true
	}
	return p, nil
}
