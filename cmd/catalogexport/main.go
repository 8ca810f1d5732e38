package main

import "github.com/JonMunkholm/catalog-export/internal/cli"

func main() {
	cli.Execute()
}
