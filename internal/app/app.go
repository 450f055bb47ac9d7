package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/brbsix/subnuker/internal/config"
	"github.com/brbsix/subnuker/internal/fsutil"
	"github.com/brbsix/subnuker/internal/patterns"
	"github.com/brbsix/subnuker/internal/remover"
	"github.com/brbsix/subnuker/internal/scan"
	"github.com/brbsix/subnuker/internal/subtitles"
	"github.com/brbsix/subnuker/internal/ui"
)

// ErrFilesFailed signale qu'au moins un fichier du lot n'a pas pu être
// traité ; le processus doit sortir avec un code non nul même si le reste
// du lot a été traité normalement.
var ErrFilesFailed = errors.New("au moins un fichier n'a pas pu être traité")

// CLIFlags contient les informations venant des flags de l'app.
// Les options booléennes ne font qu'activer (jamais désactiver) leur
// équivalent de configuration : les flags ont priorité sur le fichier.
type CLIFlags struct {
	ConfigPath    string
	PatternFiles  []string
	Inline        string
	Regex         bool
	CaseSensitive bool
	Astisub       bool
	AutoYes       bool
	GUI           bool
	Report        bool
	Targets       []string
}

// App orchestre les différentes dépendances (UI, backends, motifs).
type App struct {
	cfg   *config.Config
	ui    ui.Interface
	flags *CLIFlags
}

// New construit l'application. Pour les tests, on préférera construire App
// en injectant une UI scriptée.
func New(cfg *config.Config, uiClient ui.Interface, flags *CLIFlags) *App {
	return &App{cfg: cfg, ui: uiClient, flags: flags}
}

// issue d'un fichier traité, pour le décompte du rapport
type fileOutcome int

const (
	outcomeNoMatch fileOutcome = iota // aucun candidat
	outcomeKept                       // des candidats, aucun supprimé
	outcomeChanged                    // fichier réécrit
	outcomeFailed                     // erreur de parse ou d'E/S
)

// Run exécute le flux principal : expansion des cibles, compilation du jeu
// de motifs (avant tout scan : un motif invalide avorte le lot entier),
// puis traitement séquentiel fichier par fichier avec poursuite sur erreur.
func (a *App) Run(ctx context.Context) error {
	a.mergeFlags()

	backend := a.backend()

	targets, targetErrs := fsutil.FindTargets(a.flags.Targets, backend.Extensions())
	for _, terr := range targetErrs {
		a.ui.PrintError(ctx, fmt.Sprintf("ERROR: %v", terr))
	}
	if len(targets) == 0 {
		if len(targetErrs) > 0 {
			return ErrFilesFailed
		}
		return errors.New("aucune cible valide n'a été spécifiée")
	}

	set, err := a.compilePatterns()
	if err != nil {
		return err
	}

	rep := newReport()
	rep.failed = len(targetErrs)

	for _, path := range targets {
		outcome, quit, err := a.processFile(ctx, backend, set, path)
		if err != nil {
			a.ui.PrintError(ctx, fmt.Sprintf("ERROR: %v", err))
		}
		rep.record(path, outcome)
		if quit {
			// l'opérateur a demandé l'arrêt : les fichiers restants ne
			// sont pas touchés
			break
		}
	}

	a.ui.PrintInfo(ctx, rep.String())

	if a.cfg.CopyReport {
		a.copyReport(ctx, rep)
	}

	if !rep.anyMatch() {
		a.ui.PrintInfo(ctx, fmt.Sprintf("La recherche de %d fichier(s) n'a rien retourné.", len(targets)))
		// laisser le terminal ouvert le temps de lire (lancement depuis une GUI)
		if a.cfg.GUI {
			time.Sleep(2 * time.Second)
		}
	}

	if rep.failed > 0 {
		return ErrFilesFailed
	}
	return nil
}

// processFile : charge le fichier, scanne, fait décider l'opérateur, puis
// réécrit si quelque chose a changé. Le fichier n'est réécrit qu'une fois
// toutes les décisions prises : une interruption en cours de décision
// laisse le fichier intact.
func (a *App) processFile(ctx context.Context, backend subtitles.Backend, set *patterns.Set, path string) (fileOutcome, bool, error) {
	doc, err := backend.Load(path)
	if err != nil {
		return outcomeFailed, false, err
	}

	candidates := scan.Scan(doc, set)
	if len(candidates) == 0 {
		// réécrire quand même si une correction de caractères a eu lieu
		if doc.Modified() {
			if err := doc.Save(); err != nil {
				return outcomeFailed, false, err
			}
			return outcomeChanged, false, nil
		}
		return outcomeNoMatch, false, nil
	}

	res := remover.Resolve(ctx, path, doc.Len(), candidates, a.ui, a.cfg.AutoYes)
	if ctx.Err() != nil {
		// interruption (Ctrl+C) pendant les décisions : ne jamais persister
		// un état partiel, le fichier reste tel quel
		return outcomeKept, true, nil
	}

	applied, changed := subtitles.Apply(doc, res.Removals)
	if !changed && !doc.Modified() {
		return outcomeKept, res.Quit, nil
	}
	if err := applied.Save(); err != nil {
		return outcomeFailed, res.Quit, err
	}
	return outcomeChanged, res.Quit, nil
}

// mergeFlags applique les flags de la ligne de commande par-dessus la
// configuration chargée.
func (a *App) mergeFlags() {
	if a.flags.Regex {
		a.cfg.Regex = true
	}
	if a.flags.CaseSensitive {
		a.cfg.CaseSensitive = true
	}
	if a.flags.Astisub {
		a.cfg.Backend = config.BackendAstisub
	}
	if a.flags.AutoYes {
		a.cfg.AutoYes = true
	}
	if a.flags.GUI {
		a.cfg.GUI = true
	}
	if a.flags.Report {
		a.cfg.CopyReport = true
	}
}

func (a *App) backend() subtitles.Backend {
	if a.cfg.Backend == config.BackendAstisub {
		return subtitles.NewDelegated()
	}
	return subtitles.NewNative(a.cfg.Charfixes)
}

// compilePatterns construit le jeu de motifs effectif : fichiers de motifs
// (config puis ligne de commande, dans l'ordre donné), motif inline en
// dernier ; la liste embarquée par défaut quand rien n'est fourni.
func (a *App) compilePatterns() (*patterns.Set, error) {
	mode := patterns.ModePlain
	if a.cfg.Regex {
		mode = patterns.ModeRegex
	}
	set := patterns.NewSet(patterns.Options{
		Mode:          mode,
		CaseSensitive: a.cfg.CaseSensitive,
	})

	files := append(append([]string{}, a.cfg.PatternFiles...), a.flags.PatternFiles...)
	for _, f := range files {
		if err := set.AddFile(f); err != nil {
			return nil, err
		}
	}
	if a.flags.Inline != "" {
		if err := set.AddInline(a.flags.Inline); err != nil {
			return nil, err
		}
	}

	if set.Len() == 0 {
		if len(files) > 0 || a.flags.Inline != "" {
			// des sources ont été fournies mais aucun motif n'en est sorti :
			// probablement des fichiers vides, on refuse de scanner pour rien
			return nil, errors.New("aucun motif n'a été chargé depuis les sources fournies")
		}
		if err := set.AddDefaults(); err != nil {
			return nil, err
		}
	}
	return set, nil
}
