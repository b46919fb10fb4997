package main

import "github.com/IgorGanapolsky/ai-kindlemint-engine-sub001/internal/cli"

func main() {
	cli.Execute()
}
