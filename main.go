package main

import "github.com/z3rone-org/dirlock/cmd"

func main() {
	cmd.Execute()
}
