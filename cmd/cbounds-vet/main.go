// Command cbounds-vet runs the cbounds analyzer as a standalone vet tool:
//
//	cbounds-vet ./...
//	go vet -vettool=$(which cbounds-vet) ./...
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/sirkon/cbounds"
)

func main() {
	singlechecker.Main(cbounds.Analyzer)
}
