package main

import "github.com/ink8bit/deby/cmd"

var version = "dev"

func main() {
	cmd.Execute(version)
}
