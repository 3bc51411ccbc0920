package main

import "github.com/biogazpro/biogaz/cmd"

func main() {
	cmd.Execute()
}
