package main

import "github.com/onplate/venuechat/cmd"

func main() {
	cmd.Execute()
}
