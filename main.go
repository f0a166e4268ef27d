package main

import "wealth-objective/cli"

func main() {
	cli.Main()
}
