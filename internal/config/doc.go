// Package config loads depsentry configuration from local and global YAML
// files. It is internal; CLI code maps flags and files into engine
// configuration with CLI > local > global precedence.
package config
