// Command straxisbench times straxis's Add, Trace, and Contract kernels
// across a sweep of representative shapes.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	straxis "github.com/straxis-go/straxis"
	"github.com/straxis-go/straxis/internal/config"
	"github.com/straxis-go/straxis/internal/parallel"
)

const version = "v0.1.0-dev"

func main() {
	var (
		tuningFile = flag.String("tuning", "", "path to a YAML tuning file (see internal/config)")
		showVer    = flag.Bool("version", false, "print the version and exit")
	)
	flag.Parse()

	if *showVer {
		fmt.Printf("straxisbench %s\n", version)
		return
	}
	if *tuningFile != "" {
		if err := config.LoadFile(*tuningFile); err != nil {
			fmt.Fprintf(os.Stderr, "straxisbench: loading tuning file: %v\n", err)
			os.Exit(1)
		}
	}

	cases := benchCases()
	results := make([]result, len(cases))

	parallel.For(len(cases), func(i int) {
		results[i] = runCase(cases[i])
	}, parallel.DefaultConfig())

	for _, op := range summarize(results) {
		fmt.Printf("%-16s %3d shapes  total %v  avg %v\n", op.label, op.count, op.total, op.total/time.Duration(op.count))
	}
}

type benchCase struct {
	label string // e.g. "add/transpose"
	n     int    // side length of a square n x n matrix
	run   func(n int) int
}

type result struct {
	label   string
	elapsed time.Duration
}

// opSummary aggregates every shape's result for one kernel label.
type opSummary struct {
	label string
	count int
	total time.Duration
}

// sizeSweep lists the square-matrix side lengths each kernel is timed
// at. Three labels over this sweep comfortably clears
// parallel.DefaultConfig().MinChunkSize, so cmd/straxisbench's own run
// actually drives the goroutine fan-out instead of only ever taking the
// sequential fallback.
func sizeSweep() []int {
	sizes := make([]int, 0, 29)
	for n := 32; n <= 256; n += 8 {
		sizes = append(sizes, n)
	}
	return sizes
}

func benchCases() []benchCase {
	ops := []struct {
		label string
		run   func(n int) int
	}{
		{"add/transpose", benchAddTranspose},
		{"trace/diagonal", benchTrace},
		{"contract/matmul", benchContractMatmul},
	}

	sizes := sizeSweep()
	cases := make([]benchCase, 0, len(ops)*len(sizes))
	for _, op := range ops {
		for _, n := range sizes {
			cases = append(cases, benchCase{label: op.label, n: n, run: op.run})
		}
	}
	return cases
}

func summarize(results []result) []opSummary {
	byLabel := make(map[string]*opSummary)
	var order []string
	for _, r := range results {
		s, ok := byLabel[r.label]
		if !ok {
			s = &opSummary{label: r.label}
			byLabel[r.label] = s
			order = append(order, r.label)
		}
		s.count++
		s.total += r.elapsed
	}
	sort.Strings(order)

	out := make([]opSummary, len(order))
	for i, label := range order {
		out[i] = *byLabel[label]
	}
	return out
}

func runCase(c benchCase) result {
	start := time.Now()
	c.run(c.n)
	return result{label: c.label, elapsed: time.Since(start)}
}

func benchAddTranspose(n int) int {
	a := makeOperand(n, n)
	c := makeOperand(n, n)
	if err := straxis.Add(straxis.One[float64](), a, straxis.Normal, straxis.Zero[float64](), c, []int{1, 0}); err != nil {
		fmt.Fprintf(os.Stderr, "straxisbench: add: %v\n", err)
	}
	return n * n
}

func benchTrace(n int) int {
	a := straxis.Operand[float64]{Dims: []int{n, n}, Strides: []int{n, 1}, Data: make([]float64, n*n)}
	c := straxis.Operand[float64]{Dims: []int{}, Strides: []int{}, Data: make([]float64, 1)}
	if err := straxis.Trace(straxis.One[float64](), a, straxis.Normal, straxis.Zero[float64](), c, []int{}, []int{0}, []int{1}); err != nil {
		fmt.Fprintf(os.Stderr, "straxisbench: trace: %v\n", err)
	}
	return n
}

func benchContractMatmul(n int) int {
	a := makeOperand(n, n)
	b := makeOperand(n, n)
	c := makeOperand(n, n)
	err := straxis.Contract(straxis.One[float64](), a, straxis.Normal, b, straxis.Normal,
		straxis.Zero[float64](), c,
		[]int{0}, []int{1}, []int{1}, []int{0}, []int{0, 1},
		straxis.MethodAuto)
	if err != nil {
		fmt.Fprintf(os.Stderr, "straxisbench: contract: %v\n", err)
	}
	return n * n * n
}

func makeOperand(rows, cols int) straxis.Operand[float64] {
	return straxis.Operand[float64]{
		Dims:    []int{rows, cols},
		Strides: []int{cols, 1},
		Data:    make([]float64, rows*cols),
	}
}
