package main

import "github.com/pfrederiksen/broadway-grosses/internal/cli"

func main() {
	cli.Execute()
}
