package main

import "github.com/mouse-blink/graft/cmd"

func main() {
	cmd.Execute()
}
