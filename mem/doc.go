// Package mem implements the array registry for the um32 machine.
//
// The registry is an arena of word arrays addressed by small integer
// identifiers. Identifier 0 is the program array: it is active for the
// lifetime of the machine and its contents may only be replaced
// wholesale. All other identifiers are handed out by Allocate and
// recycled by Free through a LIFO free-identifier stack.
package mem
