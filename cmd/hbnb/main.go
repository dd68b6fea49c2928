package main

import "github.com/hbnb/rental-directory/internal/cli"

func main() {
	cli.Execute()
}
