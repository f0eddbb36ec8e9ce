package main

import "github.com/abhichhn93/conversation-intel-agent/internal/cmd"

func main() {
	cmd.Execute()
}
