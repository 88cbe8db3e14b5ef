package main

import "spamsift/internal/cli"

func main() {
	cli.Execute()
}
