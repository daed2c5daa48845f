package main

import "github.com/fretwise/fretwise/cmd"

func main() {
	cmd.Execute()
}
