package main

import "github.com/mcoot/wordscramble/internal/cli"

func main() {
	cli.Execute()
}
