package storage

import (
	_ "go.uber.org/mock/gomock"
)

//go:generate mockgen -package mocks -destination mocks/mock_taxonomy_storage.go github.com/chenxi-arter/short-drama-api-sub001/pkg/storage TaxonomyStorage
