package main

import "mc-panel/cmd"

func main() {
	cmd.Execute()
}
