package main

import (
	"emdtojson/cli"
)

func main() {
	cli.Start()
}
