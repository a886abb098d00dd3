package main

import "github.com/mvp-joe/spelunk/internal/cli"

func main() {
	cli.Execute()
}
