package main

import "github.com/parceldesk/parceldesk/internal/cli"

func main() {
	cli.Execute()
}
