// cmd/dnarle-decode/main.go
package main

import (
	"dnarle/internal/appshell"
	"dnarle/internal/decodeapp"
)

func main() { appshell.Main(decodeapp.RunContext) }
