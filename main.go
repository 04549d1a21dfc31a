package main

import "task-allocator.com/task-allocator/cmd"

func main() {
	cmd.Execute()
}
