package main

import "github.com/iksnae/devlog/cmd"

func main() {
	cmd.Execute()
}
