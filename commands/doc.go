// Package commands holds the concrete action command games
// Each game is a command.Game; wrap it with command.New to run it
package commands
