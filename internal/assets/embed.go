package assets

import "embed"

//go:embed subnuker.example.yaml
//go:embed patterns/*.txt
var Embedded embed.FS

// Nom de l'asset de config par défaut (chemin DANS Embedded)
const DefaultConfigAsset = "subnuker.example.yaml"

// Listes de motifs par défaut embarquées : utilisées quand l'utilisateur ne
// fournit ni fichier de motifs ni motif inline. Une liste par mode de
// correspondance (les deux visent les mêmes publicités, la variante regex
// est plus précise sur .com/.net/.org et www.).
const (
	DefaultTermsAsset = "patterns/terms.txt"
	DefaultRegexAsset = "patterns/regex.txt"
)
