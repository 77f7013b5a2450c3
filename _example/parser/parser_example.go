package main

import (
	"log"
	"os"

	"github.com/xiam/crisp/ast"
	"github.com/xiam/crisp/parser"
)

func main() {
	input := "(let ((x 1) (y \"two\")) `(,x ,y #\\3 (add 4 5)))"

	values, err := parser.Parse([]byte(input))
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	for _, v := range values {
		ast.Dump(os.Stdout, v)
	}
}
