package main

import "github.com/aknsh/devtools/cmd"

func main() {
	cmd.Execute()
}
