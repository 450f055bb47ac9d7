package subtitles

import "fmt"

// ParseError : fichier de sous-titres structurellement invalide. Fatale pour
// le fichier concerné, le reste du lot continue. Les erreurs du backend
// délégué sont enveloppées dans le même type : l'appelant n'a jamais à
// distinguer les backends. Line vaut 0 quand l'offset n'est pas connu.
type ParseError struct {
	Path string
	Line int
	Msg  string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Msg)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Path, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Msg)
}

func (e *ParseError) Unwrap() error { return e.Err }
