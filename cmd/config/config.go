package config

import (
	"errors"
	"livebets/parse_bovada/utils"
	"reflect"
	"strings"
	"sync"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

var (
	once         sync.Once
	cachedConfig AppConfig
)

type AppConfig struct {
	APIConfig `mapstructure:"bovada"`
	Port      string `mapstructure:"port"`
}

type APIConfig struct {
	Url          string `mapstructure:"url"`
	EventsUrl    string `mapstructure:"events_url"`
	RefererUrl   string `mapstructure:"referer_url"`
	UserAgent    string `mapstructure:"user_agent"`
	Proxy        string `mapstructure:"proxy"`
	Timeout      int    `mapstructure:"timeout"`
	PollInterval int    `mapstructure:"poll_interval"`
}

func ProvideAppMPConfig() (AppConfig, error) {
	var err error
	once.Do(func() {
		viper.AutomaticEnv()
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

		// Defaults are the known working CBB endpoint. If Bovada moves it,
		// override via configs/common.yml or env.
		viper.SetDefault("bovada.url", "https://www.bovada.lv")
		viper.SetDefault("bovada.events_url", "/services/sports/event/v2/events/A/description/basketball/college-basketball?lang=en")
		viper.SetDefault("bovada.referer_url", "/sports/basketball/college-basketball")
		viper.SetDefault("bovada.user_agent", "Mozilla/5.0 (compatible; personal-script/1.0)")
		viper.SetDefault("bovada.timeout", 20)
		viper.SetDefault("bovada.poll_interval", 15)
		viper.SetDefault("port", "8090")

		viper.AddConfigPath("configs")
		viper.SetConfigName("common")
		viper.SetConfigType("yml")
		err = viper.ReadInConfig()
		if err != nil {
			// Config file is optional, defaults cover every key.
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return
			}
			err = nil
		}

		BindEnvs(cachedConfig)

		hooks := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(utils.DefaultDecodeHooks()...))
		err = viper.Unmarshal(&cachedConfig, hooks)
		if err != nil {
			return
		}
	})

	return cachedConfig, err
}

func BindEnvs(iface interface{}, parts ...string) {
	ifv := reflect.ValueOf(iface)
	ift := reflect.TypeOf(iface)
	for i := 0; i < ift.NumField(); i++ {
		v := ifv.Field(i)
		t := ift.Field(i)
		tv, ok := t.Tag.Lookup("mapstructure")
		if !ok {
			continue
		}
		switch v.Kind() {
		case reflect.Struct:
			BindEnvs(v.Interface(), append(parts, tv)...)
		default:
			viper.BindEnv(strings.Join(append(parts, tv), "."))
		}
	}
}
