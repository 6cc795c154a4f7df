package main

import "github.com/trailboard/norquay/cmd"

func main() {
	cmd.Execute()
}
