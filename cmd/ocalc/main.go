package main

import "github.com/OpenTraceLab/opencalc/cmd/ocalc/cmd"

func main() {
	cmd.Execute()
}
