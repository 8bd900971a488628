package cliutil

import "strconv"

// ParseValue converts a command-line config value to a number or boolean
// where it looks like one, so that it is stored typed in the config file.
func ParseValue(value string) any {
	switch value {
	case "true":
		return true
	case "false":
		return false
	}
	if num, err := strconv.ParseFloat(value, 64); err == nil {
		return num
	}
	return value
}
