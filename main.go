package main

import "github.com/Digital-Shane/title-group/internal/cmd"

func main() {
	cmd.Execute()
}
