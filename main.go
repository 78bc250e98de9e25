package main

import "phishguard/cmd"

func main() {
	cmd.Execute()
}
