package ui

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

type terminalUI struct {
	reader *bufio.Reader
}

func NewTerminal() Interface {
	return &terminalUI{reader: bufio.NewReader(os.Stdin)}
}

const separator = "----------------------------------------"

func (t *terminalUI) PromptCandidate(ctx context.Context, p CandidatePrompt) Answer {
	fmt.Println()
	fmt.Println(p.Text)
	fmt.Println(separator)
	fmt.Printf("Bloc %d/%d de '%s' — %s (motif %q)\n", p.Index, p.Total, p.Path, p.Timing, p.Pattern)

	for {
		fmt.Print("Supprimer ce bloc ? [o]ui [n]on [t]ous [g]arder-tout [q]uitter : ")

		// lecture bloquante ; si le contexte est déjà annulé (Ctrl+C), on
		// se comporte comme un quit pour laisser le fichier intact
		select {
		case <-ctx.Done():
			fmt.Println()
			return AnswerQuit
		default:
		}

		input, err := t.reader.ReadString('\n')
		if err != nil {
			// stdin épuisé : dégrader proprement, voir Interface
			fmt.Println()
			return AnswerQuit
		}

		switch strings.TrimSpace(strings.ToLower(input)) {
		case "o", "oui", "y", "yes":
			return AnswerRemove
		case "n", "non", "no":
			return AnswerKeep
		case "t", "tous", "a", "all":
			return AnswerRemoveAll
		case "g", "garder", "k", "keep":
			return AnswerKeepAll
		case "q", "quit":
			return AnswerQuit
		}
		fmt.Println("❌ Réponse non reconnue. Essayez à nouveau.")
	}
}

func (t *terminalUI) PrintInfo(ctx context.Context, s string) {
	fmt.Println(s)
}

func (t *terminalUI) PrintError(ctx context.Context, s string) {
	fmt.Fprintln(os.Stderr, s)
}
