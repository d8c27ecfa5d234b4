package main

import "github.com/vybdev/uconv/cmd"

func main() {
	cmd.Execute()
}
