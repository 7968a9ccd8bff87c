package main

import "github.com/yarlson/go-todo/cmd"

func main() {
	cmd.Execute()
}
