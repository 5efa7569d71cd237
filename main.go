package main

import "github.com/theirongolddev/wealth/cmd"

func main() {
	cmd.Execute()
}
