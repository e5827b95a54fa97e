package main

import (
	"os"

	"github.com/smartcontractkit/proxy-scripts/cmd/proxyscripts"
)

func main() {
	os.Exit(proxyscripts.Execute(proxyscripts.NewProxyCallSimpleCmd()))
}
