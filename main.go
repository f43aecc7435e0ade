package main

import (
	"unshuffle-metadata/cli"
)

func main() {
	cli.Start()
}
