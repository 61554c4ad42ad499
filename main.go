package main

import "github.com/SIVAkumar-0801/beam-studio-web/cmd"

func main() {
	cmd.Execute()
}
