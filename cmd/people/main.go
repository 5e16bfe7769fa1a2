// Package main implements the people binary
// showing a table of hard-coded persons.
package main

import "github.com/domonda/tableview/internal/cli"

func main() {
	cli.DoCLI()
}
