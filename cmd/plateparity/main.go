package main

import "github.com/plateparity/plateparity/cmd/plateparity/commands"

func main() {
	commands.Execute()
}
