package main

import "facpoints/cmd"

func main() {
	cmd.Execute()
}
