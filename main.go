package main

import "s3state/cmd"

func main() {
	cmd.Execute()
}
