package main

import "github.com/jhalloran/billarchive/cmd"

func main() {
	cmd.Execute()
}
