// Command stamp embeds a payload read from stdin into a WebAssembly
// module as a named custom section placed directly after the header.
//
// Usage:
//
//	stamp <input.wasm> -s <section_name> -o <output.wasm>
//
// The payload is arbitrary bytes; nothing about its content is
// validated. The output is written to a temporary sibling file and
// renamed into place, so a failed run never leaves a truncated module
// at the output path.
package main

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/wippyai/wasmstamp/wasm"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func usage(stderr io.Writer) {
	fmt.Fprintln(stderr, "Usage: stamp <input.wasm> -s <section_name> -o <output.wasm>")
	fmt.Fprintln(stderr, "The section payload is read from stdin.")
}

// run is the whole program; split from main so tests can drive it.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	// The surface is a fixed shape: flag position is significant and
	// anything else is a usage error before any file is touched.
	if len(args) != 5 || args[1] != "-s" || args[3] != "-o" {
		usage(stderr)
		return 2
	}
	input, name, output := args[0], args[2], args[4]

	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprintln(stderr, "reading payload from stdin (end with EOF)...")
	}

	payload, err := io.ReadAll(stdin)
	if err != nil {
		fmt.Fprintf(stderr, "Error: read payload: %v\n", err)
		return 1
	}

	module, err := os.ReadFile(input)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	out, err := wasm.InsertCustomSection(module, name, payload)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %s: %v\n", input, err)
		return 1
	}

	if err := writeFileAtomic(output, out); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Fprintf(stdout, "Added '%s' custom section to %s\n", name, output)
	return 0
}

// writeFileAtomic writes data to a .tmp sibling and renames it over
// path, so the destination is either the old content or the complete
// new content.
func writeFileAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
