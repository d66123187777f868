/*
Copyright © 2025 Webmark Authors
*/
package main

import "github.com/DmitriyMoseev/webmark/cmd"

func main() {
	cmd.Execute()
}
