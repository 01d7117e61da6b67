package main

import "github.com/merethin/akari/cmd"

func main() {
	cmd.Execute()
}
