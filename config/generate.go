package config

import (
	_ "go.uber.org/mock/gomock"
)

//go:generate mockgen -package mocks -destination mocks/mock_config_unmarshaler.go github.com/chenxi-arter/short-drama-api-sub001/config ConfigUnmarshaler
