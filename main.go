package main

import "github.com/alexiusacademia/buildmeta/cmd"

func main() {
	cmd.Execute()
}
