package main

import "github.com/moyu-x/desktop-organizer/cmd"

func main() {
	cmd.Execute()
}
