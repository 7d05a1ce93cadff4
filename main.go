package main

import "github.com/saltyorg/params/cmd"

func main() {
	cmd.Execute()
}
