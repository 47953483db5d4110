package main

import (
	"github.com/ShadyMccoy/DarkPhoenix-sub005/internal/adapters/cli"
)

func main() {
	cli.Execute()
}
