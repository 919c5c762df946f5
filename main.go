package main

import "botaniq/internal/commands"

func main() {
	commands.Execute()
}
