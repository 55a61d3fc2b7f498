package main

import "github.com/rnwolfe/studycal/cmd"

func main() {
	cmd.Execute()
}
