package main

import "spotiquery/cmd"

func main() {
	cmd.Execute()
}
