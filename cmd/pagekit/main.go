// Package main is the entry point for the pagekit demo server.
// Pagekit is primarily a library; this binary serves the bundled example
// pages so the protocol and the embedded browser client can be exercised
// without writing any code.
package main

func main() {
	Execute()
}
