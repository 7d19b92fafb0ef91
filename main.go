package main

import "github.com/aerofitlabs/survey-insights/cmd"

func main() {
	cmd.Execute()
}
