package main

import "github.com/vhaggans/JVL-mac400-testing/cmd/mac400/cmd"

func main() {
	cmd.Execute()
}
