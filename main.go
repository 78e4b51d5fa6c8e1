package main

import "hsmanager/cmd"

// Version and author can be set during build with -ldflags
var (
	version = "dev"
	author  = "hsmanager developers"
)

func main() {
	cmd.SetVersion(version)
	cmd.SetAuthor(author)
	cmd.Execute()
}
