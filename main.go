package main

import "lootledger/cmd"

func main() {
	cmd.Execute()
}
