package main

import "github.com/jhoicas/inventory-admin/internal/cli"

func main() {
	cli.Execute()
}
