package main

import "github.com/OpenSchemLab/OpenSchemCap/cmd/schemcap/cmd"

func main() {
	cmd.Execute()
}
