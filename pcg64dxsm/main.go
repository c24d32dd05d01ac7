package main

import (
	"github.com/colocohen/pcg64dxsm/cmd"
)

func main() {
	cmd.Execute()
}
