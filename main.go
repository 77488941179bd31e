package main

import "github.com/polymix/polymix/cmd"

func main() {
	cmd.Execute()
}
