// Command reversort reads an integer n followed by a permutation of 1..n
// from stdin, runs the selection-by-reversal sort, and prints the n
// reported 1-based positions space-separated on one line.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/jpetreski19/Data-Structures/Sorts"
)

func main() {
	in := bufio.NewScanner(os.Stdin)
	in.Buffer(make([]byte, 1<<16), 1<<22)
	in.Split(bufio.ScanWords)
	next := func() (int, error) {
		if !in.Scan() {
			if err := in.Err(); err != nil {
				return 0, err
			}
			return 0, io.ErrUnexpectedEOF
		}
		return strconv.Atoi(in.Text())
	}

	n, err := next()
	if err != nil {
		fmt.Fprintln(os.Stderr, "reversort:", err)
		os.Exit(1)
	}
	if n < 0 {
		fmt.Fprintln(os.Stderr, "reversort: negative length", n)
		os.Exit(1)
	}
	perm := make([]int, n)
	for i := range perm {
		if perm[i], err = next(); err != nil {
			fmt.Fprintln(os.Stderr, "reversort:", err)
			os.Exit(1)
		}
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()
	for i, p := range Sorts.Reversort(perm, uint64(time.Now().UnixNano())) {
		if i > 0 {
			fmt.Fprint(out, " ")
		}
		fmt.Fprint(out, p)
	}
	fmt.Fprintln(out)
}
