package main

import "github.com/katalvlaran/hillclimb/cmd/aoc/commands"

func main() {
	commands.Execute()
}
