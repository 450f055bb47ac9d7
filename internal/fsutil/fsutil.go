package fsutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// WriteFileAtomic écrit data dans destPath de manière atomique : écriture
// dans un fichier temporaire du même répertoire puis os.Rename(tmp -> dest).
// Crée les répertoires parents si nécessaire. Évite de laisser un fichier de
// sous-titres tronqué si le processus est interrompu pendant l'écriture.
//
// destPath : chemin complet vers le fichier cible.
// data : contenu à écrire.
// perm : permissions POSIX (ex: 0o644).
func WriteFileAtomic(destPath string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(destPath)
	if dir == "" {
		dir = "."
	}
	// repertoire parent existe ?
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}

	// creation fichier temp
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	// cleanup si échec
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}()

	// écriture
	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	// sync best-effort
	_ = tmp.Sync()

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	// set permission (best-effort)
	_ = os.Chmod(tmpName, perm)

	// rename
	if err := os.Rename(tmpName, destPath); err != nil {
		return fmt.Errorf("rename tmp -> dest: %w", err)
	}
	return nil
}

// FindTargets développe paths (fichiers et/ou répertoires) en une liste
// triée et dédupliquée de fichiers dont l'extension (minuscule, avec point)
// figure dans exts. Les répertoires sont parcourus récursivement ; les
// fichiers d'extension non gérée y sont ignorés sans bruit.
//
// Les cibles inaccessibles ne font pas échouer l'expansion : elles sont
// retournées dans errs pour que l'appelant les signale et continue avec
// le reste du lot.
func FindTargets(paths []string, exts []string) (files []string, errs []error) {
	allowed := make(map[string]struct{}, len(exts))
	for _, e := range exts {
		allowed[strings.ToLower(e)] = struct{}{}
	}

	seen := make(map[string]struct{})
	add := func(p string) {
		if _, ok := allowed[strings.ToLower(filepath.Ext(p))]; !ok {
			return
		}
		// dédup sur le chemin absolu : la même cible passée deux fois
		// (ou via un fichier ET son répertoire) n'est traitée qu'une fois
		key := p
		if abs, err := filepath.Abs(p); err == nil {
			key = abs
		}
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		files = append(files, p)
	}

	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			errs = append(errs, fmt.Errorf("cible %s inaccessible : %w", p, err))
			continue
		}
		if !info.IsDir() {
			add(p)
			continue
		}
		werr := filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() {
				add(path)
			}
			return nil
		})
		if werr != nil {
			errs = append(errs, fmt.Errorf("parcours du répertoire %s : %w", p, werr))
		}
	}

	sort.Strings(files)
	return files, errs
}
