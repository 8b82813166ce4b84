package main

import "github.com/lukman83/pricewise/cmd"

func main() {
	cmd.Execute()
}
