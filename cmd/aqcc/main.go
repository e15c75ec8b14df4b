package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/fwessels/aqcc"
	"github.com/fwessels/aqcc/internal/asm"
)

func compile(fname string, w io.Writer) error {
	ctx := aqcc.NewContext()
	if strings.HasSuffix(strings.ToLower(fname), ".s") {
		seq, err := ctx.OptimizeFile(fname)
		if err != nil {
			return err
		}
		return asm.Dump(w, seq)
	}
	toks, err := ctx.PreprocessFile(fname)
	if err != nil {
		return err
	}
	return aqcc.WriteTokens(w, toks)
}

func main() {
	if len(os.Args) != 2 {
		fmt.Println("Usage: aqcc FILEPATH")
		os.Exit(1)
	}

	log.SetFlags(0)
	log.SetPrefix("[ERROR] ")
	if err := compile(os.Args[1], os.Stdout); err != nil {
		log.Fatal(err)
	}
}
