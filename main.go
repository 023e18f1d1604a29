package main

import "barrel/cmd"

func main() {
	cmd.Execute()
}
