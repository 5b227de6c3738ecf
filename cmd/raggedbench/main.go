// Command raggedbench compares append strategies for the ragged List
// against a plain slice baseline.
//
// Usage:
//
//	raggedbench [flags]
//
// Examples:
//
//	raggedbench
//	raggedbench -n 1000000
//	raggedbench -n 1000000 -batch 10000
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/cwbudde/algo-ragged/ragged"
)

func main() {
	n := flag.Int("n", 100000, "total number of scalars to append")
	batch := flag.Int("batch", 1000, "group size for the batched strategy")
	flag.Parse()

	if *n <= 0 || *batch <= 0 || *n%*batch != 0 {
		fmt.Fprintln(os.Stderr, "raggedbench: -n must be a positive multiple of -batch")
		os.Exit(1)
	}

	chunk := make([]float64, *batch)
	for i := range chunk {
		chunk[i] = float64(i)
	}

	baseline := timeIt(func() {
		var s []float64
		for i := 0; i < *n; i++ {
			s = append(s, float64(i))
		}
		_ = s
	})

	perScalar := timeIt(func() {
		l := ragged.NewList[float64]()
		for i := 0; i < *n; i++ {
			_ = l.Append(float64(i))
		}
	})

	batched := timeIt(func() {
		l := ragged.NewList[float64]()
		for i := 0; i < *n / *batch; i++ {
			if err := l.AppendGrouped(chunk, ragged.Uniform(1)); err != nil {
				fmt.Fprintln(os.Stderr, "raggedbench:", err)
				os.Exit(1)
			}
		}
	})

	bulk := timeIt(func() {
		all := make([]float64, *n)
		for i := range all {
			all[i] = float64(i)
		}
		l := ragged.NewList[float64]()
		if err := l.AppendGrouped(all, ragged.Uniform(1)); err != nil {
			fmt.Fprintln(os.Stderr, "raggedbench:", err)
			os.Exit(1)
		}
	})

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "strategy\telements\tduration\tper scalar\n")
	printRow(w, "plain slice append", *n, baseline)
	printRow(w, "List append (one element each)", *n, perScalar)
	printRow(w, fmt.Sprintf("List grouped append (batch=%d)", *batch), *n, batched)
	printRow(w, "List grouped append (one shot)", *n, bulk)
	w.Flush()
}

func timeIt(f func()) time.Duration {
	start := time.Now()
	f()
	return time.Since(start)
}

func printRow(w *tabwriter.Writer, name string, n int, d time.Duration) {
	fmt.Fprintf(w, "%s\t%d\t%v\t%v\n", name, n, d.Round(time.Microsecond), (d / time.Duration(n)).Round(time.Nanosecond))
}
