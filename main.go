package main

import "github.com/CristiGvl/picoIRQ/cmd"

func main() {
	cmd.Execute()
}
