package main

import "github.com/yuvalm11/table-timer/cmd/table-timer/cmd"

func main() {
	cmd.Execute()
}
