// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package source

import "github.com/spf13/viper"

// Viper adapts a *viper.Viper to the safeenv.Source interface.
// Keys are case insensitive, as they are in viper.
type Viper struct {
	v *viper.Viper
}

// FromViper returns a Source backed by v. The caller must not
// modify v while it is being read from.
func FromViper(v *viper.Viper) Viper {
	return Viper{v: v}
}

// Lookup implements the safeenv.Source interface.
func (src Viper) Lookup(name string) (string, bool) {
	if !src.v.IsSet(name) {
		return "", false
	}
	return src.v.GetString(name), true
}
