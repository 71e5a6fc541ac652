package main

import "github.com/kozaktomas/face-client/cmd"

func main() {
	cmd.Execute()
}
