package config

import (
	"reflect"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/v2"
)

var aliasType = reflect.TypeOf(Alias{})

// AliasDecodeHook lets a unit alias be written as a "symbol = definition"
// string wherever a full alias mapping is accepted.
func AliasDecodeHook() mapstructure.DecodeHookFuncType {
	return func(from, to reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.String || to != aliasType {
			return data, nil
		}
		return ParseAliasShorthand(data.(string))
	}
}

// Unmarshal decodes the koanf tree at path into out, accepting alias
// shorthands and weakly typed values such as numeric strings from the
// environment.
func Unmarshal(k *koanf.Koanf, path string, out any) error {
	return k.UnmarshalWithConf(path, out, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook:       AliasDecodeHook(),
			Result:           out,
			WeaklyTypedInput: true,
			TagName:          "koanf",
		},
	})
}
