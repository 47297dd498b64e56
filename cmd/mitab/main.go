package main

import "github.com/ViktorMorozov/mitab/cmd/mitab/cmd"

func main() {
	cmd.Execute()
}
