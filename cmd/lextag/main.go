// Package main provides the lextag constraint engine CLI.
package main

func main() {
	Execute()
}
