package main

import "github.com/mouse-blink/doxycov/cmd"

func main() {
	cmd.Execute()
}
