// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/um32/internal"
)

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO": "0",
	"EOF":    fmt.Sprintf("%#v", EOF),
}

// opFormat describes the operand shape of a mnemonic.
type opFormat struct {
	op   Opcode
	regs int  // Register operands, assigned right-to-left into A, B, C.
	imm  bool // Immediate layout: destination register plus a value.
}

var opFormats = map[string]opFormat{
	"cmov":  {OP_CMOV, 3, false},
	"index": {OP_INDEX, 3, false},
	"amend": {OP_AMEND, 3, false},
	"add":   {OP_ADD, 3, false},
	"mul":   {OP_MUL, 3, false},
	"div":   {OP_DIV, 3, false},
	"nand":  {OP_NAND, 3, false},
	"halt":  {OP_HALT, 0, false},
	"alloc": {OP_ALLOC, 2, false},
	"free":  {OP_FREE, 1, false},
	"out":   {OP_OUT, 1, false},
	"in":    {OP_IN, 1, false},
	"load":  {OP_LOAD, 2, false},
	"imm":   {OP_IMM, 0, true},
}

// Assembler is a single pass assembler for the um32 instruction set.
type Assembler struct {
	Verbose   bool        // If set, verbosely logs the assembler actions.
	Statement []Statement // List of generated statements.

	predefine map[string]string // Predefines
	Label     map[string]int    // Map of jump labels to word addresses.
	Equate    map[string]string // Map of equates.
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// Defines returns an iterator over the system and user equates.
func (asm *Assembler) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(sysEquate), maps.All(asm.Equate))
}

// registerOf parses a register operand r0..r7.
func registerOf(word string) (reg int, err error) {
	if len(word) == 2 && word[0] == 'r' && word[1] >= '0' && word[1] <= '7' {
		reg = int(word[1] - '0')
		return
	}

	err = ErrRegisterInvalid
	return
}

// valueOf returns the value of a simple word.
func (asm *Assembler) valueOf(word string) (value uint32, err error) {
	invert := false
	if word[0] == '~' {
		invert = true
		word = word[1:]
	}
	v64, err := strconv.ParseInt(word, 0, 33)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	if v64 <= 0xffffffff && v64 >= -int64(0x80000000) {
		if v64 < 0 {
			value = uint32(0xffffffff + (v64 + 1))
		} else {
			value = uint32(v64)
		}
	}

	if invert {
		value = ^value
	}

	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value uint32, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		var value32 uint32
		value32, err = asm.valueOf(str)
		if err != nil {
			// Ignore non-integer equates. They may be registers
			// or something else.
			continue
		}
		pred[key] = starlark.MakeInt(int(value32))
	}
	for key, addr := range asm.Label {
		pred[key] = starlark.MakeInt(addr)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value = uint32(st_int64)
	return
}

// parseLine parses a single line into source words, recording equates
// and labels as a side effect.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	// Do 'x' evaluations
	re := regexp.MustCompile(`'\\?[^']'`)
	line = re.ReplaceAllStringFunc(line, func(word string) string {
		str := word[1 : len(word)-1]
		if str[0] == '\\' {
			str = str[1:]
			switch str {
			case "\\":
				str = "\\"
			case "n":
				str = "\n"
			case "r":
				str = "\r"
			case "e":
				str = "\033"
			default:
				return word
			}
		} else if len(str) != 1 {
			return word
		}
		return fmt.Sprintf("%v", str[0])
	})

	// Strip comments.
	if n := strings.IndexByte(line, ';'); n >= 0 {
		line = line[:n]
	}

	// Do $() evaluations
	re = regexp.MustCompile(`\$\([^\$]*\)`)
	line = re.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%#v", value)
	})
	if err != nil {
		return
	}

	words = slices.DeleteFunc(strings.Fields(line), func(a string) bool { return len(a) == 0 })

	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		words = words[:0]
		return
	}

	// Leading labels mark the next word address.
	for len(words) > 0 && strings.HasSuffix(words[0], ":") {
		label := words[0][:len(words[0])-1]
		_, ok := asm.Label[label]
		if ok {
			err = ErrLabelDuplicate
			return
		}
		asm.Label[label] = len(asm.Statement)
		words = words[1:]
	}

	// Expand equates.
	for n, word := range words {
		equate, ok := asm.Equate[word]
		if ok {
			words[n] = equate
		}
	}

	return
}

// parseWords assembles one statement from its source words.
func (asm *Assembler) parseWords(words []string, lineno int) (err error) {
	st := Statement{
		LineNo: lineno,
		Pc:     len(asm.Statement),
		Words:  slices.Clone(words),
	}

	name := words[0]
	args := words[1:]

	// .word VALUE emits a raw machine word.
	if name == ".word" {
		if len(args) != 1 {
			err = ErrWordSyntax
			return
		}
		var value uint32
		value, err = asm.valueOf(args[0])
		if err != nil {
			return
		}
		st.Code = Instruction(value)
		asm.Statement = append(asm.Statement, st)
		return
	}

	format, ok := opFormats[name]
	if !ok {
		err = ErrOpcodeUnknown
		return
	}

	if format.imm {
		if len(args) != 2 {
			err = ErrOperandCount
			return
		}
		var reg int
		reg, err = registerOf(args[0])
		if err != nil {
			return
		}
		value, verr := asm.valueOf(args[1])
		if verr != nil {
			// Not a number: a label reference, resolved at link.
			st.LinkLabel = args[1]
			st.Code = MakeImm(reg, 0)
		} else {
			if value >= IMM_LIMIT {
				err = ErrImmediateRange
				return
			}
			st.Code = MakeImm(reg, value)
		}
	} else {
		if len(args) != format.regs {
			err = ErrOperandCount
			return
		}
		var regs [3]int
		// Right-align the operands into A, B, C.
		base := 3 - format.regs
		for n, arg := range args {
			regs[base+n], err = registerOf(arg)
			if err != nil {
				return
			}
		}
		st.Code = MakeABC(format.op, regs[0], regs[1], regs[2])
	}

	if asm.Verbose {
		log.Printf("asm: %04x: %v", st.Pc, st.Code)
	}

	asm.Statement = append(asm.Statement, st)
	return
}

// Parse assembles a complete source stream into a program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	if asm.Label == nil {
		asm.Label = map[string]int{}
	}
	if asm.Equate == nil {
		asm.Equate = map[string]string{}
	}
	for key, value := range sysEquate {
		if _, ok := asm.Equate[key]; !ok {
			asm.Equate[key] = value
		}
	}
	for key, value := range asm.predefine {
		asm.Equate[key] = value
	}

	scanner := bufio.NewScanner(input)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()

		var words []string
		words, err = asm.parseLine(line, lineno)
		if err != nil {
			err = ErrSyntax{LineNo: lineno, Line: line, Err: err}
			return
		}
		if len(words) == 0 {
			continue
		}

		err = asm.parseWords(words, lineno)
		if err != nil {
			err = ErrSyntax{LineNo: lineno, Line: line, Err: err}
			return
		}
	}
	err = scanner.Err()
	if err != nil {
		return
	}

	// Link: resolve forward label references.
	for n := range asm.Statement {
		st := &asm.Statement[n]
		if st.LinkLabel == "" {
			continue
		}
		addr, ok := asm.Label[st.LinkLabel]
		if !ok {
			err = ErrSyntax{LineNo: st.LineNo, Line: strings.Join(st.Words, " "),
				Err: ErrLabelMissing(st.LinkLabel)}
			return
		}
		st.Code = MakeImm(st.Code.ImmReg(), uint32(addr))
	}

	prog = &Program{Statements: asm.Statement}
	return
}
