package main

import "github.com/wisesaying/wisesaying/cmd"

func main() {
	cmd.Execute()
}
