// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ezrec/um32/cpu"
	"github.com/ezrec/um32/emulator"
)

func main() {
	var config string
	var input string
	var output string
	var trace bool
	var traceLimit uint
	var verbose bool

	flag.StringVar(&config, "C", "", "TOML run configuration file")
	flag.StringVar(&input, "i", "", "console input file ('-' for stdin)")
	flag.StringVar(&output, "o", "", "console output file ('-' for stdout)")
	flag.BoolVar(&trace, "t", false, "trace each cycle to stderr")
	flag.UintVar(&traceLimit, "L", 0, "stop tracing once the pc reaches this value")
	flag.BoolVar(&verbose, "v", false, "verbose mode")

	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %v [options] <program.um>\n", os.Args[0])
		os.Exit(2)
	}

	cfg := emulator.DefaultConfig()
	if len(config) != 0 {
		var err error
		cfg, err = emulator.LoadConfig(config)
		if err != nil {
			log.Fatalf("%v: %v", config, err)
		}
	}

	// Flags override the configuration file.
	if len(input) != 0 {
		cfg.Input = input
	}
	if len(output) != 0 {
		cfg.Output = output
	}
	if trace {
		cfg.Trace = true
	}
	if traceLimit != 0 {
		cfg.Trace = true
		cfg.TraceLimit = uint32(traceLimit)
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

	emu := emulator.NewEmulator(words)
	emu.Verbose = verbose

	if cfg.Input == "-" {
		emu.Tape.Input = os.Stdin
	} else {
		f, err := os.Open(cfg.Input)
		if err != nil {
			log.Fatalf("%v: %v", cfg.Input, err)
		}
		defer f.Close()
		emu.Tape.Input = f
	}

	if cfg.Output == "-" {
		emu.Tape.Output = os.Stdout
	} else {
		f, err := os.Create(cfg.Output)
		if err != nil {
			log.Fatalf("%v: %v", cfg.Output, err)
		}
		defer f.Close()
		emu.Tape.Output = f
	}

	if cfg.Trace {
		emu.Tracer = &emulator.Tracer{W: os.Stderr, Limit: cfg.TraceLimit}
	}

	err = emu.Run()
	if err != nil {
		log.Fatal(err)
	}
}
