package main

import "govdoc-manager/cmd"

func main() {
	cmd.Execute()
}
