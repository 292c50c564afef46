package service

import (
	"net/http"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	HTTPDoer interface {
		Do(req *http.Request) (*http.Response, error)
	}
)
