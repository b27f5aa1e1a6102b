package main

import "github.com/OpenTraceLab/OpenTraceSchematic/cmd/otsch/cmd"

func main() {
	cmd.Execute()
}
