package main

import "github.com/mcoot/gameplayers/internal/cli"

func main() {
	cli.Execute()
}
