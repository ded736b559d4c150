package main

import "github.com/greboid/wfl/cmd"

func main() {
	cmd.Execute()
}
