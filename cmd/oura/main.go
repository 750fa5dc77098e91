package main

import "github.com/arvarik/oura-go/internal/cli"

func main() {
	cli.Execute()
}
