package main

import "github.com/yuvalm11/table-timer/cmd/table-timer-sim/cmd"

func main() {
	cmd.Execute()
}
