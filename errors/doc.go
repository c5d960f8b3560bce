// Package errors provides the structured error type shared by the
// wasmstamp tools.
//
// Every failure is classified by the Phase in which it occurred (load,
// encode, write, sign, verify, config) and a Kind describing what went
// wrong.
// All errors are terminal for the invocation that produced them: the
// tools never retry or recover partially.
package errors
