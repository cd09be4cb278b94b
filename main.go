package main

import "github.com/xll-gen/cc-arrays/cmd"

// main is the entry point of the cc-arrays CLI application.
func main() {
	cmd.Execute()
}
