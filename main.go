package main

import "github.com/compmech/matprops/cmd"

func main() {
	cmd.Execute()
}
