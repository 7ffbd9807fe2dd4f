package config

import (
	"errors"
	"reflect"
	"testing"

	"github.com/spf13/viper"
	"go.uber.org/mock/gomock"

	"github.com/kasuboski/mediarec/config/mocks"
)

func TestNew(t *testing.T) {
	t.Run("fail to read in config", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cu := mocks.NewMockConfigUnmarshaler(ctrl)

		wantErr := errors.New("expected testing error")
		cu.EXPECT().ConfigFileUsed().Times(1).Return("fake-config.yaml")
		cu.EXPECT().ReadInConfig().Times(1).Return(wantErr)
		c, err := New(cu)
		if err == nil {
			t.Errorf("TestNew() err = %v, want %v", err, wantErr)
		}

		wantConfig := Config{}
		if !reflect.DeepEqual(c, wantConfig) {
			t.Errorf("TestNew() config = %v, want %v", c, wantConfig)
		}
	})

	t.Run("fail to unmarshal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cu := mocks.NewMockConfigUnmarshaler(ctrl)

		wantErr := errors.New("bad yaml")
		cu.EXPECT().ConfigFileUsed().Return("")
		cu.EXPECT().Unmarshal(gomock.Any()).Return(wantErr)
		_, err := New(cu)
		if !errors.Is(err, wantErr) {
			t.Errorf("TestNew() err = %v, want %v", err, wantErr)
		}
	})

	t.Run("success with file", func(t *testing.T) {
		cu := viper.New()
		cu.SetConfigFile("./testing/config.yaml")
		c, err := New(cu)
		if err != nil {
			t.Errorf("TestNew() err = %v, want %v", err, nil)
		}

		wantConfig := Config{
			TMDB: TMDB{
				Scheme:     "https",
				Host:       "my-host",
				APIKey:     "my-api-key",
				MaxRetries: 4,
			},
			Storage: Storage{
				Driver:   "sqlite",
				FilePath: "/data/mediarec.db",
			},
			Recommend: Recommend{
				Neighbors:  7,
				MinSupport: 0.2,
			},
		}

		if !reflect.DeepEqual(c, wantConfig) {
			t.Errorf("TestNew() config = %+v, want %+v", c, wantConfig)
		}
	})

	t.Run("success without file", func(t *testing.T) {
		cu := viper.New()
		cu.SetConfigFile("")
		cu.SetDefault("tmdb.scheme", "https")
		cu.SetDefault("storage.driver", "file")
		c, err := New(cu)
		if err != nil {
			t.Errorf("TestNew() err = %v, want %v", err, nil)
		}

		wantConfig := Config{
			TMDB: TMDB{
				Scheme: "https",
			},
			Storage: Storage{
				Driver: "file",
			},
		}

		if !reflect.DeepEqual(c, wantConfig) {
			t.Errorf("TestNew() config = %+v, want %+v", c, wantConfig)
		}
	})

	t.Run("invalid values", func(t *testing.T) {
		cu := viper.New()
		cu.SetConfigFile("")
		cu.SetDefault("storage.driver", "postgres")
		cu.SetDefault("recommend.minConfidence", 1.5)
		_, err := New(cu)
		if err == nil {
			t.Errorf("TestNew() err = nil, want a validation error")
		}
	})
}
