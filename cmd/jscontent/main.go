package main

import "github.com/jackchuka/jscontent/cmd/jscontent/commands"

func main() {
	commands.Execute()
}
