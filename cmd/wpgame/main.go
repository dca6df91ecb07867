package main

import "github.com/mcoot/wordpuzzles/internal/cli"

func main() {
	cli.Execute()
}
