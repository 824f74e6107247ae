// quilt-bench measures the effect of staged batching on the piece table:
// typing bursts with and without staging, backspace runs, word deletes,
// and materialization cost.
package main

import (
	"fmt"
	"math/rand"
	"runtime"
	"strings"
	"time"

	"github.com/quilttext/quilt"
)

const (
	baseDocWords = 200_000
	typingBurst  = 100_000
	backspaceRun = 50_000
	wordDeletes  = 10_000
	cursorJumps  = 20_000
)

type BenchResult struct {
	Name     string
	Duration time.Duration
	Ops      int
	Extra    string
}

func (r BenchResult) String() string {
	if r.Ops > 0 {
		opsPerSec := float64(r.Ops) / r.Duration.Seconds()
		if r.Extra != "" {
			return fmt.Sprintf("%-40s %12v  (%d ops, %.2f ops/sec) %s", r.Name, r.Duration.Round(time.Millisecond), r.Ops, opsPerSec, r.Extra)
		}
		return fmt.Sprintf("%-40s %12v  (%d ops, %.2f ops/sec)", r.Name, r.Duration.Round(time.Millisecond), r.Ops, opsPerSec)
	}
	if r.Extra != "" {
		return fmt.Sprintf("%-40s %12v  %s", r.Name, r.Duration.Round(time.Millisecond), r.Extra)
	}
	return fmt.Sprintf("%-40s %12v", r.Name, r.Duration.Round(time.Millisecond))
}

func main() {
	fmt.Println("Quilt Benchmark")
	fmt.Println("===============")
	fmt.Printf("Go version: %s\n", runtime.Version())
	fmt.Println()

	base := generateBaseDoc()
	fmt.Printf("Base document: %d chars\n\n", len(base))

	var results []BenchResult
	runBench := func(name string, fn func() BenchResult) {
		fmt.Printf("  %-40s ", name+"...")
		result := fn()
		fmt.Printf("%v\n", result.Duration.Round(time.Millisecond))
		results = append(results, result)
	}

	fmt.Println("Running benchmarks...")
	runBench("Typing burst (staged)", func() BenchResult {
		return benchTyping("Typing burst (staged)", base, quilt.DefaultStagingCapacity)
	})
	runBench("Typing burst (commit per char)", func() BenchResult {
		return benchTyping("Typing burst (commit per char)", base, 1)
	})
	runBench("Backspace run (staged)", func() BenchResult {
		return benchBackspaces(base)
	})
	runBench("Word deletes", func() BenchResult {
		return benchWordDeletes(base)
	})
	runBench("Scattered inserts (flush per jump)", func() BenchResult {
		return benchScatteredInserts(base)
	})
	runBench("Materialize", func() BenchResult {
		return benchMaterialize(base)
	})

	fmt.Println("\nResults:")
	fmt.Println("========")
	for _, r := range results {
		fmt.Println(r)
	}
}

func generateBaseDoc() string {
	words := []string{"piece", "table", "quilt", "editor", "buffer", "text", "span"}
	var b strings.Builder
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < baseDocWords; i++ {
		b.WriteString(words[rng.Intn(len(words))])
		if i%12 == 11 {
			b.WriteByte('\n')
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

func mustOpen(text string, maxStaged int) *quilt.Quilt {
	doc, err := quilt.Open(quilt.Options{
		Text:               text,
		MaxStagedChars:     maxStaged,
		MaxStagedDeletions: maxStaged,
	})
	if err != nil {
		panic(err)
	}
	return doc
}

func benchTyping(name, base string, maxStaged int) BenchResult {
	doc := mustOpen(base, maxStaged)

	start := time.Now()
	for i := 0; i < typingBurst; i++ {
		pos := doc.CursorPosition()
		if _, err := doc.InsertChar(pos, 'x'); err != nil {
			panic(err)
		}
	}
	doc.FlushPending()
	elapsed := time.Since(start)

	return BenchResult{
		Name:     name,
		Duration: elapsed,
		Ops:      typingBurst,
		Extra:    fmt.Sprintf("pieces=%d", doc.PieceCount()),
	}
}

func benchBackspaces(base string) BenchResult {
	doc := mustOpen(base, quilt.DefaultStagingCapacity)

	start := time.Now()
	for i := 0; i < backspaceRun; i++ {
		if _, err := doc.DeleteBackward(doc.CursorPosition()); err != nil {
			break
		}
	}
	doc.FlushPending()
	elapsed := time.Since(start)

	return BenchResult{
		Name:     "Backspace run (staged)",
		Duration: elapsed,
		Ops:      backspaceRun,
		Extra:    fmt.Sprintf("pieces=%d", doc.PieceCount()),
	}
}

func benchWordDeletes(base string) BenchResult {
	doc := mustOpen(base, quilt.DefaultStagingCapacity)

	start := time.Now()
	done := 0
	for i := 0; i < wordDeletes; i++ {
		if err := doc.DeleteWordBackward(doc.CursorPosition()); err != nil {
			break
		}
		done++
	}
	elapsed := time.Since(start)

	return BenchResult{
		Name:     "Word deletes",
		Duration: elapsed,
		Ops:      done,
		Extra:    fmt.Sprintf("len=%d", doc.Len()),
	}
}

func benchScatteredInserts(base string) BenchResult {
	doc := mustOpen(base, quilt.DefaultStagingCapacity)
	rng := rand.New(rand.NewSource(7))

	start := time.Now()
	for i := 0; i < cursorJumps; i++ {
		doc.FlushPending()
		pos := rng.Intn(doc.Len() + 1)
		if _, err := doc.InsertChar(pos, 'y'); err != nil {
			panic(err)
		}
	}
	doc.FlushPending()
	elapsed := time.Since(start)

	return BenchResult{
		Name:     "Scattered inserts (flush per jump)",
		Duration: elapsed,
		Ops:      cursorJumps,
		Extra:    fmt.Sprintf("pieces=%d", doc.PieceCount()),
	}
}

func benchMaterialize(base string) BenchResult {
	doc := mustOpen(base, quilt.DefaultStagingCapacity)
	rng := rand.New(rand.NewSource(9))
	for i := 0; i < 1000; i++ {
		doc.FlushPending()
		pos := rng.Intn(doc.Len() + 1)
		if _, err := doc.InsertChar(pos, 'z'); err != nil {
			panic(err)
		}
	}
	doc.FlushPending()

	start := time.Now()
	total := 0
	for i := 0; i < 20; i++ {
		total += len(doc.Text())
	}
	elapsed := time.Since(start)

	return BenchResult{
		Name:     "Materialize",
		Duration: elapsed,
		Ops:      20,
		Extra:    fmt.Sprintf("%d bytes/op", total/20),
	}
}
