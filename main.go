package main

import "github.com/yarlson/taskdeck/cmd"

func main() {
	cmd.Execute()
}
