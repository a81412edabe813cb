// Comparison tool for validating listdiff output against other diff implementations
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/dacharyc/listdiff"
	godiff "github.com/sergi/go-diff/diffmatchpatch"
)

func main() {
	testCases := []struct {
		name string
		a, b []string
	}{
		{
			name: "Fox example (common anchor word)",
			a:    []string{"The", "quick", "brown", "fox", "jumps"},
			b:    []string{"A", "slow", "red", "fox", "leaps"},
		},
		{
			name: "Reorder (move detection)",
			a:    []string{"alpha", "beta", "gamma", "delta"},
			b:    []string{"beta", "alpha", "delta", "gamma"},
		},
		{
			name: "Prose with common words",
			a:    strings.Split("The quick brown fox jumps over the lazy dog in the park", " "),
			b:    strings.Split("A slow red fox leaps over the sleeping cat in the garden", " "),
		},
	}

	// Add a large test case
	largeA := generateLargeText(500, 0)
	largeB := generateLargeText(500, 42) // Same structure, different seed for changes
	testCases = append(testCases, struct {
		name string
		a, b []string
	}{
		name: "Large file (500 lines, scattered changes)",
		a:    largeA,
		b:    largeB,
	})

	for _, tc := range testCases {
		fmt.Printf("\n=== %s ===\n", tc.name)
		fmt.Printf("A: %d elements, B: %d elements\n", len(tc.a), len(tc.b))

		// Test listdiff with move detection
		rec := &opRecorder{}
		start := time.Now()
		result, err := listdiff.Diff(tc.a, tc.b, listdiff.EqualityComparer[string]{}, true)
		if err != nil {
			fmt.Printf("listdiff error: %v\n", err)
			continue
		}
		batching := listdiff.NewBatchingCallback(rec)
		result.DispatchUpdatesTo(batching)
		batching.Flush()
		listdiffTime := time.Since(start)

		// Test go-diff (operates on strings, so join/split)
		dmp := godiff.New()
		start = time.Now()
		aText := strings.Join(tc.a, "\n")
		bText := strings.Join(tc.b, "\n")
		goDiffs := dmp.DiffMain(aText, bText, true)
		goDiffTime := time.Since(start)

		goDiffStats := analyzeGoDiff(goDiffs)

		fmt.Printf("\nlistdiff: %v\n", listdiffTime)
		fmt.Printf("  Operations: %d (Insert: %d, Remove: %d, Move: %d, Change: %d)\n",
			len(rec.ops), rec.inserts, rec.removes, rec.moves, rec.changes)

		fmt.Printf("\ngo-diff:  %v\n", goDiffTime)
		fmt.Printf("  Operations: %d (Equal: %d, Delete: %d, Insert: %d)\n",
			goDiffStats.total, goDiffStats.equal, goDiffStats.delete, goDiffStats.insert)

		// Show detailed output for small cases
		if len(tc.a) <= 20 {
			fmt.Println("\nlistdiff update stream:")
			for _, op := range rec.ops {
				fmt.Printf("  %s\n", op)
			}
		}
	}
}

// opRecorder counts and pretty-prints the update stream.
type opRecorder struct {
	inserts, removes, moves, changes int
	ops                              []string
}

func (r *opRecorder) OnInserted(position, count int) {
	r.inserts++
	r.ops = append(r.ops, fmt.Sprintf("insert %d at %d", count, position))
}

func (r *opRecorder) OnRemoved(position, count int) {
	r.removes++
	r.ops = append(r.ops, fmt.Sprintf("remove %d at %d", count, position))
}

func (r *opRecorder) OnMoved(fromPosition, toPosition int) {
	r.moves++
	r.ops = append(r.ops, fmt.Sprintf("move %d -> %d", fromPosition, toPosition))
}

func (r *opRecorder) OnChanged(position, count int, payload any) {
	r.changes++
	r.ops = append(r.ops, fmt.Sprintf("change %d at %d", count, position))
}

type diffStats struct {
	total, equal, delete, insert int
}

func analyzeGoDiff(diffs []godiff.Diff) diffStats {
	var s diffStats
	s.total = len(diffs)
	for _, d := range diffs {
		switch d.Type {
		case godiff.DiffEqual:
			s.equal++
		case godiff.DiffDelete:
			s.delete++
		case godiff.DiffInsert:
			s.insert++
		}
	}
	return s
}

func generateLargeText(lines int, seed int) []string {
	words := []string{"the", "quick", "brown", "fox", "jumps", "over", "lazy", "dog",
		"func", "main", "return", "if", "else", "for", "range", "var", "const",
		"import", "package", "type", "struct", "interface", "map", "slice"}

	result := make([]string, lines)
	for i := 0; i < lines; i++ {
		// Generate a line with some words
		lineWords := make([]string, 5+i%3)
		for j := range lineWords {
			idx := (i*7 + j*13 + seed) % len(words)
			lineWords[j] = words[idx]
		}
		result[i] = strings.Join(lineWords, " ")
	}

	// Introduce some changes based on seed
	for i := seed % 10; i < lines; i += 10 + seed%5 {
		result[i] = "CHANGED LINE " + fmt.Sprint(i)
	}

	return result
}
