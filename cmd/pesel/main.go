package main

import "github.com/aalvaropc/pesel/internal/cli"

func main() {
	cli.Execute()
}
