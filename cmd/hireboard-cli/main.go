package main

import "github.com/nfrund/hireboard/cmd/hireboard-cli/cmd"

func main() {
	cmd.Execute()
}
