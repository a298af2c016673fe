package main

import "github.com/modforge/sdkgen/internal/cli"

func main() {
	cli.Execute()
}
