// Command ppqsortdemo reads whitespace-separated int64 values from stdin,
// sorts them in parallel, and writes them back one per line. It exists for
// manual smoke-testing, not as a benchmark harness.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/joeycumines/go-ppqsort"
	_ "go.uber.org/automaxprocs"
)

func main() {
	if err := run(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "ppqsortdemo:", err)
		os.Exit(1)
	}
}

func run(in *os.File, out *os.File) error {
	var data []int64

	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		v, err := strconv.ParseInt(sc.Text(), 10, 64)
		if err != nil {
			return fmt.Errorf("parsing %q: %w", sc.Text(), err)
		}
		data = append(data, v)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	if err := ppqsort.Sort(data, ppqsort.WithPolicy(ppqsort.Parallel)); err != nil {
		return fmt.Errorf("sorting: %w", err)
	}

	w := bufio.NewWriter(out)
	for _, v := range data {
		if _, err := fmt.Fprintln(w, v); err != nil {
			return err
		}
	}
	return w.Flush()
}
