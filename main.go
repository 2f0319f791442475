/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/epicevents/crm/cmd"

func main() {
	cmd.Execute()
}
