package main

import (
	"github.com/carewell-org/hospital/api"
)

func main() {
	api.MainLoop()
}
