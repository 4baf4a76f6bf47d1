package main

import "github.com/mouse-blink/detest/cmd"

func main() {
	cmd.Execute()
}
