package main

import (
	"github.com/misectl/misectl/src/cmd"
)

func main() {
	cmd.Execute()
}
