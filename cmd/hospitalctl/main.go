package main

import (
	"github.com/carewell-org/hospital/cmd/hospitalctl/command"
)

func main() {
	command.Execute()
}
