package main

import "github.com/kasuboski/mediarec/cmd"

func main() {
	cmd.Execute()
}
