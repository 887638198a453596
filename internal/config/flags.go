package config

import "github.com/spf13/pflag"

// FlagBinding maps a command-line flag onto a config key. The flag wins
// only when the user set it explicitly.
type FlagBinding struct {
	Key  string
	Flag *pflag.Flag
}

// Bind looks up name in fs and pairs it with key. Missing flags are skipped
// by Load.
func Bind(fs *pflag.FlagSet, key, name string) FlagBinding {
	return FlagBinding{Key: key, Flag: fs.Lookup(name)}
}
