package main

import "github.com/brogergvhs/mangaso/cmd"

func main() {
	cmd.Execute()
}
