package main

import "github.com/unkn0wn-root/acctlayout/cmd/acctlayout/cmd"

func main() {
	cmd.Execute()
}
