package main

import (
	"github.com/enlight/dbgmits/cmd"
)

func main() {
	cmd.Execute()
}
