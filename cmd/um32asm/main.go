// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ezrec/um32/cpu"
)

func main() {
	var output string
	var verbose bool

	flag.StringVar(&output, "o", "a.um", "compiled image output file")
	flag.BoolVar(&verbose, "v", false, "verbose mode")

	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %v [-o output.um] <program.uma>\n", os.Args[0])
		os.Exit(2)
	}

	path := flag.Arg(0)
	inf, err := os.Open(path)
	if err != nil {
		log.Fatalf("%v: %v", path, err)
	}
	defer inf.Close()

	asm := &cpu.Assembler{Verbose: verbose}
	prog, err := asm.Parse(inf)
	if err != nil {
		log.Fatalf("%v: %v", path, err)
	}

	if verbose {
		for key, value := range asm.Defines() {
			log.Printf("asm: .equ %v %v", key, value)
		}
	}

	err = os.WriteFile(output, prog.Binary(), 0o644)
	if err != nil {
		log.Fatalf("%v: %v", output, err)
	}
}
