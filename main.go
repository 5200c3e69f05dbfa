package main

import "github.com/adminrec/personnel-management/cmd"

func main() {
	cmd.Execute()
}
