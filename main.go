package main

import "github.com/employee-management/cmd"

func main() {
	cmd.Execute()
}
