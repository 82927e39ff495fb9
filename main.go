package main

import "github/chapool/hl-signer/cmd"

func main() {
	cmd.Execute()
}
