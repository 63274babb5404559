package main

import "github.com/redactyl/depsentry/cmd/depsentry"

func main() { depsentry.Execute() }
