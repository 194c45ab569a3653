// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ezrec/um32/cpu"
)

func main() {
	var output string

	flag.StringVar(&output, "o", "-", "mnemonic output file ('-' for stdout)")

	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %v [-o output.uma] <program.um>\n", os.Args[0])
		os.Exit(2)
	}

	path := flag.Arg(0)
	inf, err := os.Open(path)
	if err != nil {
		log.Fatalf("%v: %v", path, err)
	}
	words, err := cpu.ReadImage(inf)
	inf.Close()
	if err != nil {
		log.Fatalf("%v: %v", path, err)
	}

	var out io.Writer = os.Stdout
	if output != "-" {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
		out = ouf
	}

	err = cpu.Disassemble(out, words)
	if err != nil {
		log.Fatalf("%v: %v", output, err)
	}
}
