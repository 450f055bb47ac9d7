package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/brbsix/subnuker/internal/app"
	"github.com/brbsix/subnuker/internal/assets"
	"github.com/brbsix/subnuker/internal/bootstrap"
	"github.com/brbsix/subnuker/internal/config"
	"github.com/brbsix/subnuker/internal/ui"
)

const (
	program = "subnuker"
	version = "0.2.0"
)

func main() {
	flags, showVersion := parseFlags()
	if showVersion {
		fmt.Printf("%s %s\n", program, version)
		return
	}

	// emplacement config par défaut : à côté de l'exécutable
	if flags.ConfigPath == "subnuker.yaml" || flags.ConfigPath == "" {
		if exePath, err := os.Executable(); err == nil {
			flags.ConfigPath = filepath.Join(filepath.Dir(exePath), "subnuker.yaml")
		}
	}

	// s'assurer que le fichier config existe, si non on le crée
	if err := bootstrap.EnsureConfigPresent(
		flags.ConfigPath,
		assets.Embedded,
		assets.DefaultConfigAsset,
	); err != nil {
		log.Printf("erreur: EnsureConfigPresent: %v", err)
	}

	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		log.Fatalf("config load: %v", err)
	}

	// root context qui s'annule sur SIGINT / SIGTERM : la sauvegarde
	// n'intervenant qu'après toutes les décisions, une interruption laisse
	// le fichier en cours intact
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tui := ui.NewTerminal()
	a := app.New(cfg, tui, flags)
	if err := a.Run(ctx); err != nil {
		if errors.Is(err, app.ErrFilesFailed) {
			// les échecs individuels ont déjà été signalés
			os.Exit(1)
		}
		log.Fatalf("%s: %v", program, err)
	}
}

// multiFlag : valeur de flag répétable (-f motifs.txt -f autres.txt)
type multiFlag []string

func (m *multiFlag) String() string { return strings.Join(*m, ",") }

func (m *multiFlag) Set(v string) error {
	*m = append(*m, v)
	return nil
}

func parseFlags() (*app.CLIFlags, bool) {
	f := &app.CLIFlags{}
	var files multiFlag
	var ar, showVersion bool

	flag.Usage = usage

	flag.StringVar(&f.ConfigPath, "config", "subnuker.yaml", "chemin du fichier de configuration")
	flag.Var(&files, "f", "obtenir les motifs depuis FILE (répétable)")
	flag.Var(&files, "file", "alias de -f")
	flag.StringVar(&f.Inline, "p", "", "motif unique passé directement")
	flag.StringVar(&f.Inline, "pattern", "", "alias de -p")
	flag.BoolVar(&f.Regex, "regex", false, "interpréter les motifs comme des expressions régulières")
	flag.BoolVar(&f.CaseSensitive, "c", false, "correspondance sensible à la casse")
	flag.BoolVar(&f.CaseSensitive, "case", false, "alias de -c")
	flag.BoolVar(&f.Astisub, "a", false, "utiliser le backend astisub (formats autres que SRT)")
	flag.BoolVar(&f.Astisub, "astisub", false, "alias de -a")
	flag.BoolVar(&ar, "ar", false, "raccourci pour -a --regex")
	flag.BoolVar(&f.AutoYes, "y", false, "oui automatique à toutes les suppressions")
	flag.BoolVar(&f.AutoYes, "yes", false, "alias de -y")
	flag.BoolVar(&f.GUI, "g", false, "indiquer une utilisation depuis une GUI")
	flag.BoolVar(&f.GUI, "gui", false, "alias de -g")
	flag.BoolVar(&f.Report, "report", false, "copier le résumé du lot dans le presse-papier")
	flag.BoolVar(&showVersion, "version", false, "afficher la version et quitter")
	flag.Parse()

	f.PatternFiles = files
	f.Targets = flag.Args()
	if ar {
		f.Astisub = true
		f.Regex = true
	}
	return f, showVersion
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(),
		"usage: %s [options] <fichiers ou répertoires de sous-titres>\n\n"+
			"Recherche les blocs publicitaires dans des fichiers de sous-titres et\n"+
			"propose leur suppression.\n\n", program)
	flag.PrintDefaults()
}
