package main

import "massnet.org/masssum/cmd/masssum/cmd"

func main() {
	cmd.Execute()
}
