package main

import "country-exchange/cmd"

func main() {
	cmd.Execute()
}
