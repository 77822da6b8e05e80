package main

import "github.com/zmk-tools/zmk2vial/cmd"

func main() {
	cmd.Execute()
}
