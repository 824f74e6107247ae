// quilt-repl is an interactive demo of the quilt piece-table engine.
// Staging thresholds are read from an optional quilt.yaml config file.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/quilttext/quilt"
)

// replConfig holds the tool's tunables, loaded through viper.
type replConfig struct {
	Staging struct {
		MaxChars     int `mapstructure:"max_chars"`
		MaxDeletions int `mapstructure:"max_deletions"`
	} `mapstructure:"staging"`
}

func loadConfig() (replConfig, error) {
	var cfg replConfig
	viper.SetConfigName("quilt")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.config/quilt")
	viper.SetDefault("staging.max_chars", quilt.DefaultStagingCapacity)
	viper.SetDefault("staging.max_deletions", quilt.DefaultStagingCapacity)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return cfg, err
		}
		// No config file: defaults apply.
	}
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// REPL holds the state of the interactive session.
type REPL struct {
	doc    *quilt.Quilt
	reader *bufio.Reader
	cfg    replConfig
}

func main() {
	fmt.Println("Quilt REPL - Piece Table Engine Demo")
	fmt.Println("Type 'help' for available commands, 'quit' to exit")
	fmt.Println()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	repl := &REPL{
		reader: bufio.NewReader(os.Stdin),
		cfg:    cfg,
	}

	for {
		fmt.Print("quilt> ")
		input, err := repl.reader.ReadString('\n')
		if err != nil {
			fmt.Println("\nGoodbye!")
			break
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if !repl.handleCommand(input) {
			break
		}
	}
}

func (r *REPL) handleCommand(input string) bool {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return true
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help":
		r.printHelp()

	case "quit", "exit":
		fmt.Println("Goodbye!")
		return false

	case "open":
		r.cmdOpen(strings.Join(args, " "))

	case "type":
		r.cmdType(strings.Join(args, " "))

	case "insert":
		r.cmdInsert(args)

	case "bs", "backspace":
		r.cmdBackspace(args)

	case "del", "delete":
		r.cmdDelete(args)

	case "bword":
		r.withDoc(func() {
			if err := r.doc.DeleteWordBackward(r.doc.CursorPosition()); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
		})

	case "fword":
		r.withDoc(func() {
			if err := r.doc.DeleteWordForward(r.doc.CursorPosition()); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
		})

	case "move":
		r.cmdMove(args)

	case "flush":
		r.withDoc(func() {
			r.doc.FlushPending()
			fmt.Println("Flushed")
		})

	case "show":
		r.withDoc(func() {
			fmt.Printf("%q\n", r.doc.Text())
		})

	case "pieces":
		r.withDoc(func() {
			fmt.Printf("Committed pieces: %d\n", r.doc.PieceCount())
		})

	case "len":
		r.withDoc(func() {
			fmt.Printf("Length: %d\n", r.doc.Len())
		})

	case "status":
		r.cmdStatus()

	default:
		fmt.Printf("Unknown command: %s (try 'help')\n", cmd)
	}

	return true
}

func (r *REPL) printHelp() {
	fmt.Println("Commands:")
	fmt.Println("  open [text]      - open a document with the given initial text")
	fmt.Println("  type <text>      - type text at the cursor, one staged char at a time")
	fmt.Println("  insert <pos> <c> - stage a single character at a position")
	fmt.Println("  bs [n]           - backspace n times at the cursor (default 1)")
	fmt.Println("  del [n]          - forward-delete n times at the cursor (default 1)")
	fmt.Println("  bword            - delete the word before the cursor")
	fmt.Println("  fword            - delete the word after the cursor")
	fmt.Println("  move <delta>     - move the cursor, clamped to bounds")
	fmt.Println("  flush            - commit pending staged edits")
	fmt.Println("  show             - materialize and print the document")
	fmt.Println("  pieces           - committed piece count")
	fmt.Println("  len              - document length (flushes)")
	fmt.Println("  status           - cursor offset, derived line/column, piece count")
	fmt.Println("  quit             - exit")
}

func (r *REPL) withDoc(fn func()) {
	if r.doc == nil {
		fmt.Println("No document open (use 'open')")
		return
	}
	fn()
}

func (r *REPL) cmdOpen(text string) {
	doc, err := quilt.Open(quilt.Options{
		Text:               text,
		MaxStagedChars:     r.cfg.Staging.MaxChars,
		MaxStagedDeletions: r.cfg.Staging.MaxDeletions,
	})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	r.doc = doc
	fmt.Printf("Opened document (%d chars, staging %d/%d)\n",
		doc.Len(), r.cfg.Staging.MaxChars, r.cfg.Staging.MaxDeletions)
}

// cmdType demonstrates the caller protocol: contiguous characters stage at
// the cursor; a discontinuity is flushed and the character retried.
func (r *REPL) cmdType(text string) {
	if r.doc == nil {
		fmt.Println("No document open (use 'open')")
		return
	}
	if text == "" {
		fmt.Println("Usage: type <text>")
		return
	}

	buffered, committed := 0, 0
	for _, ch := range text {
		pos := r.doc.CursorPosition()
		outcome, err := r.doc.InsertChar(pos, ch)
		if errors.Is(err, quilt.ErrDiscontinuity) {
			r.doc.FlushPending()
			outcome, err = r.doc.InsertChar(pos, ch)
		}
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if outcome == quilt.Committed {
			committed++
		} else {
			buffered++
		}
	}
	fmt.Printf("Typed %d chars (%d buffered, %d forced a commit)\n",
		buffered+committed, buffered, committed)
}

func (r *REPL) cmdInsert(args []string) {
	if r.doc == nil {
		fmt.Println("No document open (use 'open')")
		return
	}
	if len(args) != 2 || len([]rune(args[1])) != 1 {
		fmt.Println("Usage: insert <pos> <char>")
		return
	}
	pos, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Printf("Bad position: %v\n", err)
		return
	}

	outcome, err := r.doc.InsertChar(pos, []rune(args[1])[0])
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Println(outcomeWord(outcome))
}

func (r *REPL) cmdBackspace(args []string) {
	r.repeatDelete(args, func(pos int) (quilt.StageOutcome, error) {
		return r.doc.DeleteBackward(pos)
	})
}

func (r *REPL) cmdDelete(args []string) {
	r.repeatDelete(args, func(pos int) (quilt.StageOutcome, error) {
		return r.doc.DeleteForward(pos)
	})
}

func (r *REPL) repeatDelete(args []string, del func(int) (quilt.StageOutcome, error)) {
	if r.doc == nil {
		fmt.Println("No document open (use 'open')")
		return
	}
	n := 1
	if len(args) > 0 {
		v, err := strconv.Atoi(args[0])
		if err != nil || v < 1 {
			fmt.Println("Usage: bs|del [count]")
			return
		}
		n = v
	}

	for i := 0; i < n; i++ {
		if _, err := del(r.doc.CursorPosition()); err != nil {
			fmt.Printf("Stopped after %d: %v\n", i, err)
			return
		}
	}
	fmt.Printf("Staged %d deletion(s)\n", n)
}

func (r *REPL) cmdMove(args []string) {
	if r.doc == nil {
		fmt.Println("No document open (use 'open')")
		return
	}
	if len(args) != 1 {
		fmt.Println("Usage: move <delta>")
		return
	}
	delta, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Printf("Bad delta: %v\n", err)
		return
	}
	fmt.Printf("Cursor at %d\n", r.doc.MoveCursor(delta))
}

// cmdStatus derives line/column from the materialized text; the engine
// itself only speaks logical offsets.
func (r *REPL) cmdStatus() {
	if r.doc == nil {
		fmt.Println("No document open (use 'open')")
		return
	}

	text := []rune(r.doc.Text())
	pos := r.doc.CursorPosition()
	line, col := 0, 0
	for i := 0; i < pos && i < len(text); i++ {
		if text[i] == '\n' {
			line++
			col = 0
		} else {
			col++
		}
	}

	fmt.Printf("Length: %d  Cursor: %d (line %d, col %d)  Pieces: %d\n",
		len(text), pos, line, col, r.doc.PieceCount())
}

func outcomeWord(outcome quilt.StageOutcome) string {
	if outcome == quilt.Committed {
		return "Committed (forced a flush)"
	}
	return "Buffered"
}
